package model

import "time"

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  The json tags are omitted here because these structs
// are used internally by the repository layer; handlers define
// separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name shown in the UI.
//  Email        – unique email address, stored lowercased.
//  PasswordHash – bcrypt hashed password.
//  Bio          – optional free-form profile text.
//  ProfilePic   – optional reference to a profile picture.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Bio          string    // users.bio
	ProfilePic   string    // users.profile_pic
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
