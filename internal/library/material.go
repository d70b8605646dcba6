package library

// MaterialKind discriminates the bibliographic material union.
type MaterialKind string

const (
	KindBook     MaterialKind = "libro"
	KindMagazine MaterialKind = "revista"
	KindDigital  MaterialKind = "digital"
)

// Material is a bibliographic record. Common fields are always set;
// kind-specific fields are populated according to Kind and left zero
// otherwise.
type Material struct {
	ID              string   `json:"id"`
	Title           string   `json:"titulo"`
	Authors         []string `json:"autores"`
	PublicationDate string   `json:"fechaPublicacion"`
	Publisher       string   `json:"editorial"`
	Language        string   `json:"idioma"`
	Categories      []string `json:"categorias"`
	Available       bool     `json:"disponible"`

	Kind MaterialKind `json:"-"`

	// Book
	ISBN       string `json:"isbn,omitempty"`
	Pages      int    `json:"numPaginas,omitempty"`
	BookFormat string `json:"formatoLibro,omitempty"`

	// Magazine
	ISSN      string `json:"issn,omitempty"`
	Volume    int    `json:"volumen,omitempty"`
	Number    int    `json:"numero,omitempty"`
	Frequency string `json:"periodicidad,omitempty"`

	// Digital material
	URL           string  `json:"url,omitempty"`
	DigitalFormat string  `json:"formatoDigital,omitempty"`
	SizeMB        float64 `json:"tamanoMB,omitempty"`
}

// ResolveKind infers Kind from which discriminating fields came back
// populated on the wire.
func (m *Material) ResolveKind() {
	switch {
	case m.ISBN != "":
		m.Kind = KindBook
	case m.ISSN != "":
		m.Kind = KindMagazine
	case m.URL != "":
		m.Kind = KindDigital
	}
}

// BookInput is the payload for creating or updating a book.
type BookInput struct {
	Title           string   `json:"titulo" validate:"required"`
	Authors         []string `json:"autores" validate:"required,min=1"`
	PublicationDate string   `json:"fechaPublicacion" validate:"required"`
	Publisher       string   `json:"editorial" validate:"required"`
	Language        string   `json:"idioma" validate:"required"`
	Categories      []string `json:"categorias"`
	ISBN            string   `json:"isbn" validate:"required"`
	Pages           int      `json:"numPaginas" validate:"gt=0"`
	Format          string   `json:"formato"`
}

// MagazineInput is the payload for creating a magazine.
type MagazineInput struct {
	Title           string   `json:"titulo" validate:"required"`
	Authors         []string `json:"autores" validate:"required,min=1"`
	PublicationDate string   `json:"fechaPublicacion" validate:"required"`
	Publisher       string   `json:"editorial" validate:"required"`
	Language        string   `json:"idioma" validate:"required"`
	Categories      []string `json:"categorias"`
	ISSN            string   `json:"issn" validate:"required"`
	Volume          int      `json:"volumen" validate:"gt=0"`
	Number          int      `json:"numero" validate:"gt=0"`
	Frequency       string   `json:"periodicidad"`
}

// DigitalMaterialInput is the payload for creating a digital material.
type DigitalMaterialInput struct {
	Title           string   `json:"titulo" validate:"required"`
	Authors         []string `json:"autores" validate:"required,min=1"`
	PublicationDate string   `json:"fechaPublicacion" validate:"required"`
	Publisher       string   `json:"editorial" validate:"required"`
	Language        string   `json:"idioma" validate:"required"`
	Categories      []string `json:"categorias"`
	URL             string   `json:"url" validate:"required,url"`
	Format          string   `json:"formato"`
	SizeMB          float64  `json:"tamanoMB" validate:"gt=0"`
}
