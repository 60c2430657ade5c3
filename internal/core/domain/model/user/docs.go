// Package user holds the account aggregate used for authentication and
// role checks. Passwords are stored as bcrypt hashes only.
package user
