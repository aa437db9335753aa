package models

// NavItem is one entry of the client navigation menu.
type NavItem struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Path  string `bson:"path" json:"path"`
	Order int    `bson:"order" json:"order"`
}
