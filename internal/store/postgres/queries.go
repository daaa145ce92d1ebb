package postgres

const userColumns = `id, name, email, age, phone, address, created_at, updated_at`

const todoColumns = `id, user_id, title, description, completed, due_date, created_at, updated_at`

const (
	insertUser = `INSERT INTO users(name, email, age, phone, address)
		VALUES($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	selectUsers = `SELECT ` + userColumns + ` FROM users ORDER BY id`

	selectUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	updateUser = `UPDATE users
		SET name = $1,
		    email = $2,
		    updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	deleteUser = `DELETE FROM users WHERE id = $1`
)

const (
	insertTodo = `INSERT INTO todos(user_id, title, description, due_date)
		VALUES($1, $2, $3, $4)
		RETURNING ` + todoColumns

	selectTodos = `SELECT ` + todoColumns + ` FROM todos ORDER BY id`
)
