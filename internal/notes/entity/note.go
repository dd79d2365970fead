package entity

// Note is a short titled text owned by the notes module.
type Note struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt int64
}
