package postgres

const userColumns = `id, username, email, first_name, last_name, password_hash, roles, created_at, updated_at, deleted_at`

const (
	queryDetailUser = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	queryGetOneByUsername = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 AND deleted_at IS NULL`

	queryGetOneByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL`

	queryInsertUser = `
		INSERT INTO users (id, username, email, first_name, last_name, password_hash, roles, created_at, updated_at)
		VALUES (:id, :username, :email, :first_name, :last_name, :password_hash, :roles, :created_at, :updated_at)`

	queryUpdateUser = `
		UPDATE users
		SET username = :username,
		    email = :email,
		    first_name = :first_name,
		    last_name = :last_name,
		    password_hash = :password_hash,
		    roles = :roles,
		    updated_at = :updated_at
		WHERE id = :id AND deleted_at IS NULL`

	queryDeleteUser = `
		UPDATE users
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`
)
