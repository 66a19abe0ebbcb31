package services

import (
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// BlogService serves the editorial section. Posts ship with the
// storefront itself; there is no backend resource behind them.
type BlogService struct {
	posts []models.BlogPost
}

func NewBlogService() *BlogService {
	return &BlogService{posts: blogPosts}
}

func (s *BlogService) All() []models.BlogPost {
	out := make([]models.BlogPost, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *BlogService) BySlug(slug string) (*models.BlogPost, bool) {
	for i := range s.posts {
		if s.posts[i].Slug == slug {
			post := s.posts[i]
			return &post, true
		}
	}
	return nil, false
}

func (s *BlogService) Recent(limit int) []models.BlogPost {
	if limit <= 0 || limit > len(s.posts) {
		limit = len(s.posts)
	}
	out := make([]models.BlogPost, limit)
	copy(out, s.posts[:limit])
	return out
}

var blogPosts = []models.BlogPost{
	{
		ID:      1,
		Title:   "Guía Definitiva: Cómo elegir tu primer casco",
		Slug:    "como-elegir-primer-casco",
		Excerpt: "Descubre los factores clave para comprar tu primer casco de moto: seguridad, tipo, talla y materiales.",
		Content: `# Cómo elegir tu primer casco de moto

Elegir tu primer casco es probablemente la decisión más importante que tomarás como nuevo motorista.

## 1. Tipos de Casco

### Integral (Full Face)
La opción más segura. Cubre toda la cabeza y la cara de una sola pieza.

### Modular (Abatible)
Permite levantar la mentonera. Muy popular en mototurismo.

### Jet (Abierto)
Muy fresco y con gran campo de visión, pero con menor protección.

## 2. La Talla Correcta

Mide la circunferencia de tu cabeza por encima de las cejas y consulta la
tabla del fabricante. El casco debe apretar un poco sin doler; si mueves
la cabeza bruscamente, no debe bailar.

## 3. Homologación

Busca siempre la etiqueta ECE 22.06, la normativa europea más reciente.

## Conclusión

Para tu primer casco, nuestra recomendación es un integral de fibra:
el mejor equilibrio entre seguridad y peso.`,
		Author:   "Carlos MotoGear",
		Date:     "2024-05-15",
		ImageURL: "/assets/placeholder-helmet.jpg",
		Tags:     []string{"Seguridad", "Guías", "Principiantes"},
		ReadTime: "5 min",
	},
	{
		ID:      2,
		Title:   "Mantenimiento de ropa de cuero: Trucos y Consejos",
		Slug:    "mantenimiento-ropa-cuero",
		Excerpt: "Aprende a limpiar, hidratar y conservar tu mono o chaqueta de cuero para que dure años.",
		Content: `# Mantenimiento de tu equipamiento de cuero

El cuero necesita cuidados para no agrietarse ni perder sus propiedades.

## Limpieza Básica
Después de cada ruta larga pasa un paño húmedo y deja secar al aire,
nunca bajo el sol directo ni cerca de radiadores.

## Hidratación Profunda
Cada 3-6 meses aplica una crema específica para cuero con movimientos
circulares y deja absorber durante la noche.

## Almacenamiento
Cuelga la chaqueta en una percha ancha, en un lugar seco y ventilado.
Evita fundas de plástico cerradas que pueden crear moho.`,
		Author:   "Laura Taller",
		Date:     "2024-06-02",
		ImageURL: "/assets/placeholder-gloves.jpg",
		Tags:     []string{"Mantenimiento", "Equipamiento", "Tutorial"},
		ReadTime: "3 min",
	},
	{
		ID:      3,
		Title:   "Review: Alpinestars GP Plus R v3",
		Slug:    "review-alpinestars-gp-plus-r-v3",
		Excerpt: "Probamos a fondo la nueva chaqueta deportiva de Alpinestars. Análisis de confort y protección.",
		Content: `# Review: Alpinestars GP Plus R v3

La hemos probado durante 1000 km y este es nuestro veredicto.

## Diseño y Confort
Incorpora paneles elásticos en zonas clave que mejoran mucho la movilidad
respecto a la v2.

## Protección
Cuero bovino de 1.3 mm, protecciones Nucleon Flex Plus en hombros y
codos, deslizaderas externas y bolsillo para espaldera.

## Veredicto
Si buscas una chaqueta deportiva para fin de semana o circuito amateur,
es una apuesta segura. Puntuación: 9/10.`,
		Author:   "Equipo de Pruebas",
		Date:     "2024-06-20",
		ImageURL: "/assets/hero-moto.jpg",
		Tags:     []string{"Reviews", "Alpinestars", "Chaquetas"},
		ReadTime: "4 min",
	},
}
