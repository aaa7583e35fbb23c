package dto

// SeriesPoint una cubeta diaria de la serie de movimientos: suma de
// entradas y salidas cuyo timestamp cae en ese día calendario, más el stock
// total actual de todos los productos.
//
// Stock no es una reconstrucción histórica: cada cubeta repite el total
// vigente en el momento del cómputo (simplificación conocida).
type SeriesPoint struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Entries int    `json:"entries"`
	Exits   int    `json:"exits"`
	Stock   int    `json:"stock"`
}
