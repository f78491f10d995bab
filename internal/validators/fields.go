package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the credential email.
	FieldEmail = "email"

	// FieldPassword targets the credential password.
	FieldPassword = "password"

	// FieldUserID targets the owner of a note.
	FieldUserID = "user_id"

	// FieldNoteID targets the identifier of a note in lookups.
	FieldNoteID = "id"

	// FieldTitle targets the title of a note.
	FieldTitle = "title"

	// FieldBody targets the body of a note.
	FieldBody = "body"
)

// Length limits enforced by the validators.
const (
	MaxEmailLength = 254
	MaxTitleLength = 255
)
