package library

// Loan statuses as the backend reports them.
const (
	LoanActive   = "ACTIVO"
	LoanReturned = "DEVUELTO"
	LoanOverdue  = "VENCIDO"
)

// Loan is a borrowing record. Fine is zero until the backend computes
// one on return; loan-state transitions are backend business rules and
// are only displayed here.
type Loan struct {
	ID         string   `json:"id"`
	LoanDate   string   `json:"fechaPrestamo"`
	DueDate    string   `json:"fechaDevolucionEsperada"`
	ReturnDate string   `json:"fechaDevolucionReal"`
	Status     string   `json:"estado"`
	Fine       float64  `json:"multa"`
	User       *User    `json:"usuario,omitempty"`
	Material   Material `json:"material"`
}

// LoanInput is the payload for requesting a loan.
type LoanInput struct {
	UserID     string `json:"usuarioId" validate:"required"`
	MaterialID string `json:"materialId" validate:"required"`
	DueDate    int64  `json:"fechaDevolucionEsperada" validate:"gt=0"`
}
