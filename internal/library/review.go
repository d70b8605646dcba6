package library

// Review is a user-authored rating and comment on a material.
type Review struct {
	ID        string    `json:"id"`
	Rating    int       `json:"calificacion"`
	Comment   string    `json:"comentario"`
	CreatedAt string    `json:"fechaCreacion"`
	UpdatedAt string    `json:"fechaModificacion"`
	Author    *User     `json:"autor,omitempty"`
	Material  *Material `json:"material,omitempty"`
}

// ReviewInput is the payload for creating or updating a review.
type ReviewInput struct {
	AuthorID   string `json:"autorId" validate:"required"`
	MaterialID string `json:"materialId" validate:"required"`
	Rating     int    `json:"calificacion" validate:"min=1,max=5"`
	Comment    string `json:"comentario" validate:"required"`
}
