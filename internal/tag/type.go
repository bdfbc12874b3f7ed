package tag

type GetInput struct {
	Search string
}

type CreateInput struct {
	ID  string
	Tag string
}
