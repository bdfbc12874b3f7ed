package model

// Permission keys registered in the gate's permission table.
const (
	PermUserList     = "user.list"
	PermUserGetOne   = "user.get-one"
	PermUserCreate   = "user.create"
	PermUserUpdate   = "user.update"
	PermUserDelete   = "user.delete"
	PermUserReassign = "user.reassign"

	PermArticleList   = "article.list"
	PermArticleGetOne = "article.get-one"
	PermArticleCreate = "article.create"
	PermArticleUpdate = "article.update"
	PermArticleDelete = "article.delete"

	PermTagList   = "tag.list"
	PermTagCreate = "tag.create"
	PermTagDelete = "tag.delete"

	PermLoginTokenMint = "auth.login-token.mint"
	PermRoleList       = "role.list"
)
