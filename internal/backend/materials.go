package backend

import (
	"context"

	"github.com/machinebox/graphql"

	"github.com/biblio-project/bibctl/internal/library"
)

func resolveKinds(materials []library.Material) []library.Material {
	for i := range materials {
		materials[i].ResolveKind()
	}
	return materials
}

// Materials lists the whole catalog.
func (c *Client) Materials(ctx context.Context) ([]library.Material, error) {
	req := graphql.NewRequest(materialsQuery)
	var resp struct {
		Materials []library.Material `json:"materiales"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resolveKinds(resp.Materials), nil
}

// Material fetches one catalog entry by id.
func (c *Client) Material(ctx context.Context, id string) (library.Material, error) {
	req := graphql.NewRequest(materialQuery)
	req.Var("id", id)
	var resp struct {
		Material library.Material `json:"material"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Material{}, err
	}
	resp.Material.ResolveKind()
	return resp.Material, nil
}

// Books lists only books.
func (c *Client) Books(ctx context.Context) ([]library.Material, error) {
	req := graphql.NewRequest(booksQuery)
	var resp struct {
		Books []library.Material `json:"libros"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resolveKinds(resp.Books), nil
}

// Magazines lists only magazines.
func (c *Client) Magazines(ctx context.Context) ([]library.Material, error) {
	req := graphql.NewRequest(magazinesQuery)
	var resp struct {
		Magazines []library.Material `json:"revistas"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resolveKinds(resp.Magazines), nil
}

// DigitalMaterials lists only digital materials.
func (c *Client) DigitalMaterials(ctx context.Context) ([]library.Material, error) {
	req := graphql.NewRequest(digitalMaterialsQuery)
	var resp struct {
		Materials []library.Material `json:"materialesDigitales"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resolveKinds(resp.Materials), nil
}

// SearchByTitle searches the catalog by title substring.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]library.Material, error) {
	req := graphql.NewRequest(searchByTitleQuery)
	req.Var("titulo", title)
	var resp struct {
		Materials []library.Material `json:"buscarMaterialesPorTitulo"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resolveKinds(resp.Materials), nil
}

// SearchByAuthor searches the catalog by author name.
func (c *Client) SearchByAuthor(ctx context.Context, author string) ([]library.Material, error) {
	req := graphql.NewRequest(searchByAuthorQuery)
	req.Var("autor", author)
	var resp struct {
		Materials []library.Material `json:"buscarMaterialesPorAutor"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resolveKinds(resp.Materials), nil
}

// SearchByCategory searches the catalog by category enum value.
func (c *Client) SearchByCategory(ctx context.Context, category string) ([]library.Material, error) {
	req := graphql.NewRequest(searchByCategoryQuery)
	req.Var("categoria", category)
	var resp struct {
		Materials []library.Material `json:"buscarMaterialesPorCategoria"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resolveKinds(resp.Materials), nil
}

// CreateBook adds a book to the catalog. Admin only, enforced by the
// backend.
func (c *Client) CreateBook(ctx context.Context, input library.BookInput) (library.Material, error) {
	req := graphql.NewRequest(createBookMutation)
	req.Var("libro", input)
	var resp struct {
		Material library.Material `json:"crearLibro"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Material{}, err
	}
	resp.Material.ResolveKind()
	return resp.Material, nil
}

// UpdateBook replaces a book's record.
func (c *Client) UpdateBook(ctx context.Context, id string, input library.BookInput) (library.Material, error) {
	req := graphql.NewRequest(updateBookMutation)
	req.Var("id", id)
	req.Var("libro", input)
	var resp struct {
		Material library.Material `json:"actualizarLibro"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Material{}, err
	}
	resp.Material.ResolveKind()
	return resp.Material, nil
}

// DeleteBook removes a book from the catalog.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	req := graphql.NewRequest(deleteBookMutation)
	req.Var("id", id)
	var resp struct {
		Deleted bool `json:"eliminarLibro"`
	}
	return c.run(ctx, req, &resp)
}

// CreateMagazine adds a magazine to the catalog.
func (c *Client) CreateMagazine(ctx context.Context, input library.MagazineInput) (library.Material, error) {
	req := graphql.NewRequest(createMagazineMutation)
	req.Var("revista", input)
	var resp struct {
		Material library.Material `json:"crearRevista"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Material{}, err
	}
	resp.Material.ResolveKind()
	return resp.Material, nil
}

// CreateDigitalMaterial adds a digital material to the catalog.
func (c *Client) CreateDigitalMaterial(ctx context.Context, input library.DigitalMaterialInput) (library.Material, error) {
	req := graphql.NewRequest(createDigitalMaterialMutation)
	req.Var("materialDigital", input)
	var resp struct {
		Material library.Material `json:"crearMaterialDigital"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return library.Material{}, err
	}
	resp.Material.ResolveKind()
	return resp.Material, nil
}
