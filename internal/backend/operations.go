package backend

// GraphQL documents. Field names are the backend's wire contract;
// kind-specific format fields are aliased apart so one Go struct can
// decode every material shape.

const materialFields = `
      id
      titulo
      autores
      fechaPublicacion
      editorial
      idioma
      categorias
      disponible
      ... on Libro {
        isbn
        numPaginas
        formatoLibro: formato
      }
      ... on Revista {
        issn
        volumen
        numero
        periodicidad
      }
      ... on MaterialDigital {
        url
        formatoDigital: formato
        tamanoMB
      }`

const (
	loginMutation = `
  mutation Login($email: String!, $password: String!) {
    login(email: $email, password: $password)
  }`

	registerUserMutation = `
  mutation RegistrarUsuario($usuario: UsuarioInput!) {
    registrarUsuario(usuario: $usuario) {
      id
      nombre
      apellido
      email
      rol
      fechaRegistro
    }
  }`

	materialsQuery = `
  query GetMateriales {
    materiales {` + materialFields + `
    }
  }`

	materialQuery = `
  query GetMaterial($id: ID!) {
    material(id: $id) {` + materialFields + `
    }
  }`

	booksQuery = `
  query GetLibros {
    libros {
      id
      titulo
      autores
      fechaPublicacion
      editorial
      idioma
      categorias
      disponible
      isbn
      numPaginas
      formatoLibro: formato
    }
  }`

	magazinesQuery = `
  query GetRevistas {
    revistas {
      id
      titulo
      autores
      fechaPublicacion
      editorial
      idioma
      categorias
      disponible
      issn
      volumen
      numero
      periodicidad
    }
  }`

	digitalMaterialsQuery = `
  query GetMaterialesDigitales {
    materialesDigitales {
      id
      titulo
      autores
      fechaPublicacion
      editorial
      idioma
      categorias
      disponible
      url
      formatoDigital: formato
      tamanoMB
    }
  }`

	searchByTitleQuery = `
  query BuscarMaterialesPorTitulo($titulo: String!) {
    buscarMaterialesPorTitulo(titulo: $titulo) {` + materialFields + `
    }
  }`

	searchByAuthorQuery = `
  query BuscarMaterialesPorAutor($autor: String!) {
    buscarMaterialesPorAutor(autor: $autor) {` + materialFields + `
    }
  }`

	searchByCategoryQuery = `
  query BuscarMaterialesPorCategoria($categoria: CategoriaEnum!) {
    buscarMaterialesPorCategoria(categoria: $categoria) {` + materialFields + `
    }
  }`

	createBookMutation = `
  mutation CrearLibro($libro: LibroInput!) {
    crearLibro(libro: $libro) {
      id
      titulo
      disponible
      isbn
    }
  }`

	updateBookMutation = `
  mutation ActualizarLibro($id: ID!, $libro: LibroInput!) {
    actualizarLibro(id: $id, libro: $libro) {
      id
      titulo
      disponible
      isbn
    }
  }`

	deleteBookMutation = `
  mutation EliminarLibro($id: ID!) {
    eliminarLibro(id: $id)
  }`

	createMagazineMutation = `
  mutation CrearRevista($revista: RevistaInput!) {
    crearRevista(revista: $revista) {
      id
      titulo
      disponible
      issn
    }
  }`

	createDigitalMaterialMutation = `
  mutation CrearMaterialDigital($materialDigital: MaterialDigitalInput!) {
    crearMaterialDigital(materialDigital: $materialDigital) {
      id
      titulo
      disponible
      url
    }
  }`

	loansQuery = `
  query GetPrestamos {
    prestamos {
      id
      fechaPrestamo
      fechaDevolucionEsperada
      fechaDevolucionReal
      estado
      multa
      usuario {
        id
        nombre
        apellido
      }
      material {
        id
        titulo
        ... on Libro { isbn }
        ... on Revista { issn }
        ... on MaterialDigital { url }
      }
    }
  }`

	loansByUserQuery = `
  query GetPrestamosPorUsuario($usuarioId: ID!) {
    prestamosPorUsuario(usuarioId: $usuarioId) {
      id
      fechaPrestamo
      fechaDevolucionEsperada
      fechaDevolucionReal
      estado
      multa
      material {
        id
        titulo
        ... on Libro { isbn }
        ... on Revista { issn }
        ... on MaterialDigital { url }
      }
    }
  }`

	createLoanMutation = `
  mutation CrearPrestamo($prestamo: PrestamoInput!) {
    crearPrestamo(prestamo: $prestamo) {
      id
      fechaPrestamo
      fechaDevolucionEsperada
      estado
      material {
        id
        titulo
      }
    }
  }`

	registerReturnMutation = `
  mutation RegistrarDevolucion($prestamoId: ID!) {
    registrarDevolucion(prestamoId: $prestamoId) {
      id
      fechaDevolucionReal
      estado
      multa
    }
  }`

	reviewsQuery = `
  query GetResenas {
    resenas {
      id
      calificacion
      comentario
      fechaCreacion
      fechaModificacion
      autor {
        id
        nombre
        apellido
      }
      material {
        id
        titulo
      }
    }
  }`

	reviewsByMaterialQuery = `
  query GetResenasPorMaterial($materialId: ID!) {
    resenasPorMaterial(materialId: $materialId) {
      id
      calificacion
      comentario
      fechaCreacion
      fechaModificacion
      autor {
        id
        nombre
        apellido
      }
    }
  }`

	createReviewMutation = `
  mutation CrearResena($resena: ResenaInput!) {
    crearResena(resena: $resena) {
      id
      calificacion
      comentario
      fechaCreacion
    }
  }`

	updateReviewMutation = `
  mutation ActualizarResena($id: ID!, $resena: ResenaInput!) {
    actualizarResena(id: $id, resena: $resena) {
      id
      calificacion
      comentario
      fechaModificacion
    }
  }`

	deleteReviewMutation = `
  mutation EliminarResena($id: ID!) {
    eliminarResena(id: $id)
  }`

	usersQuery = `
  query GetUsuarios {
    usuarios {
      id
      nombre
      apellido
      email
      rol
      fechaRegistro
    }
  }`

	userQuery = `
  query GetUsuario($id: ID!) {
    usuario(id: $id) {
      id
      nombre
      apellido
      email
      rol
      fechaRegistro
      prestamos {
        id
        fechaPrestamo
        fechaDevolucionEsperada
        fechaDevolucionReal
        estado
        multa
        material {
          id
          titulo
        }
      }
      resenas {
        id
        calificacion
        comentario
        fechaCreacion
        material {
          id
          titulo
        }
      }
    }
  }`
)
