package postgres

const articleColumns = `id, title, permalink, content, excerpt, author_id, draft, created_at, updated_at, deleted_at`

const (
	queryDetailArticle = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1 AND deleted_at IS NULL`

	queryGetOneByPermalink = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE permalink = $1 AND deleted_at IS NULL`

	queryInsertArticle = `
		INSERT INTO articles (id, title, permalink, content, excerpt, author_id, draft, created_at, updated_at)
		VALUES (:id, :title, :permalink, :content, :excerpt, :author_id, :draft, :created_at, :updated_at)`

	queryUpdateArticle = `
		UPDATE articles
		SET title = :title,
		    permalink = :permalink,
		    content = :content,
		    excerpt = :excerpt,
		    draft = :draft,
		    updated_at = :updated_at
		WHERE id = :id AND deleted_at IS NULL`

	queryDeleteArticle = `
		UPDATE articles
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`

	queryArticleTags = `
		SELECT t.id, t.tag, t.created_at
		FROM tags t
		JOIN article_tag at ON at.tag_id = t.id
		WHERE at.article_id = $1
		ORDER BY t.tag`

	queryClearArticleTags = `
		DELETE FROM article_tag
		WHERE article_id = $1`

	queryInsertArticleTag = `
		INSERT INTO article_tag (article_id, tag_id)
		VALUES ($1, $2)`
)
