package schema

import "time"

// TokenTypeBearer is the token type issued by the notes service.
const TokenTypeBearer = "bearer"

type (
	// Credentials represents the email/password pair submitted to the
	// register and login endpoints.
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// TokenResponse represents a successful login reply.
	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	// Note represents a note owned by the authenticated user.
	Note struct {
		ID        int64     `json:"id"`
		Title     string    `json:"title"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}

	// NoteRequest represents the payload for creating or updating a note.
	NoteRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	// Message represents a plain acknowledgement reply.
	Message struct {
		Message string `json:"message"`
	}

	// Detail represents an error reply.
	Detail struct {
		Detail string `json:"detail"`
	}
)
