package model

// Post is a row of the posts table served by JSONPlaceholder.
type Post struct {
	ID     int    `json:"id" yaml:"id" db:"id"`
	UserID int    `json:"userId" yaml:"userId" db:"user_id"`
	Title  string `json:"title" yaml:"title" db:"title"`
	Body   string `json:"body" yaml:"body" db:"body"`
}

const PostsTable = "posts"

// PostSchema declares every posts column as sortable and filterable.
func PostSchema() *Schema[Post] {
	return MustSchema(PostsTable,
		Field[Post]{
			Name:     "id",
			Label:    "ID",
			Sortable: true,
			Kind:     KindNumber,
			Accessor: func(p Post) Value { return Int(p.ID) },
		},
		Field[Post]{
			Name:     "title",
			Label:    "Title",
			Sortable: true,
			Kind:     KindString,
			Accessor: func(p Post) Value { return String(p.Title) },
		},
		Field[Post]{
			Name:     "body",
			Label:    "Content",
			Sortable: true,
			Kind:     KindString,
			Accessor: func(p Post) Value { return String(p.Body) },
		},
		Field[Post]{
			Name:     "userId",
			Label:    "User ID",
			Sortable: true,
			Kind:     KindNumber,
			Accessor: func(p Post) Value { return Int(p.UserID) },
		},
	)
}
