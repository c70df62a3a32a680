package inventory

import "strings"

// ProductNames normaliza nombres de producto antes de compararlos. El vocabulario
// de inventario es texto libre (partidas de compra, ingredientes de receta y
// consumos comparten nombres sin catálogo rígido); aislar la normalización tras
// esta interfaz permite sustituirla por un catálogo real de productos sin tocar
// el algoritmo de descuento.
type ProductNames interface {
	Canonical(name string) string
}

// CaseFoldNames normaliza con trim + minúsculas. No toca acentos: un desajuste
// de acentos entre catálogo y texto de venta produce NotFound silencioso.
type CaseFoldNames struct{}

// NewCaseFoldNames construye el normalizador por defecto.
func NewCaseFoldNames() CaseFoldNames { return CaseFoldNames{} }

// Canonical devuelve el nombre recortado y en minúsculas.
func (CaseFoldNames) Canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LookupName decide el nombre con el que se busca la receta de una línea
// vendida: el nombre base si viene (el display name puede traer texto de
// variación entre paréntesis, ej. "Café Americano (Grande)"), si no el display
// name. Solo recorta espacios; sin fuzzy matching.
func LookupName(baseName, displayName string) string {
	if s := strings.TrimSpace(baseName); s != "" {
		return s
	}
	return strings.TrimSpace(displayName)
}
