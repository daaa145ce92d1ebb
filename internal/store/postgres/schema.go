package postgres

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users(
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(150) NOT NULL,
	age INT,
	phone VARCHAR(15),
	address TEXT,
	created_at TIMESTAMP DEFAULT NOW(),
	updated_at TIMESTAMP DEFAULT NOW()
)`

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos(
	id SERIAL PRIMARY KEY,
	user_id INT REFERENCES users(id) ON DELETE CASCADE,
	title VARCHAR(200) NOT NULL,
	description TEXT,
	completed BOOLEAN DEFAULT false,
	due_date DATE,
	created_at TIMESTAMP DEFAULT NOW(),
	updated_at TIMESTAMP DEFAULT NOW()
)`

// users must exist before todos references it
var schema = []string{createUsersTable, createTodosTable}
