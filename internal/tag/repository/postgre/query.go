package postgres

const tagColumns = `id, tag, created_at`

const (
	queryListTags = `
		SELECT ` + tagColumns + `
		FROM tags
		ORDER BY tag`

	querySearchTags = `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE tag ILIKE $1
		ORDER BY tag`

	queryGetOneTagByName = `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE LOWER(tag) = LOWER($1)`

	queryInsertTag = `
		INSERT INTO tags (id, tag, created_at)
		VALUES (:id, :tag, :created_at)`

	queryDetailTag = `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE id = $1`

	queryDeleteTag = `
		DELETE FROM tags
		WHERE id = $1`
)
