package store

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	NoteRepository    NoteRepository
}

// NewStorages builds every SQL repository over db.
func NewStorages(db *DB) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db),
		SessionRepository: NewSessionRepository(db),
		NoteRepository:    NewNoteRepository(db),
	}
}
