// seed genera un script SQL inicial para la base: usuario administrador con
// hash bcrypt y, opcionalmente, un ticket de compra desglosado a partir de un
// CSV de proveedor (los exporta en ISO-8859-1, con columnas
// producto;cantidad;unidad;precio;tipo).
//
// Uso: go run ./cmd/seed [ruta/proveedor.csv]
// Escribe: migrations/002_seed.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@cafe-pos.local"
)

func main() {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "cambiame123"
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD no definido, usando contraseña por defecto")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash bcrypt: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos iniciales: usuario administrador y compra de arranque\n\n")
	fmt.Fprintf(out, `INSERT INTO users (name, username, email, password, role)
VALUES ('Administrador', '%s', '%s', '%s', 'Administrador')
ON CONFLICT (username) DO NOTHING;

`, adminUsername, adminEmail, escapeSQL(string(hash)))

	rows := 0
	if len(os.Args) > 1 {
		rows, err = writeSupplierTicket(out, os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "CSV de proveedor: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generado %s: usuario admin y %d partidas de compra\n", outPath, rows)
}

// writeSupplierTicket convierte el CSV del proveedor en un ticket desglosado.
// El archivo llega en ISO-8859-1; se transcodifica a UTF-8 al leer.
func writeSupplierTicket(out *os.File, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 5
	records, err := r.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(records) > 0 && strings.EqualFold(records[0][0], "producto") {
		records = records[1:] // cabecera
	}

	out.WriteString(`INSERT INTO tickets (ticket_ref, provider, total, payment_method, status)
VALUES ('SEED-001', 'Carga inicial', 0, 'Efectivo', 'Desglosado');

`)
	rows := 0
	for _, rec := range records {
		product := strings.TrimSpace(rec[0])
		if product == "" {
			continue
		}
		unit := strings.TrimSpace(rec[2])
		lineType := strings.TrimSpace(rec[4])
		if lineType == "" {
			lineType = "Insumo"
		}
		fmt.Fprintf(out, `INSERT INTO ticket_items (ticket_id, product, quantity, unit, unit_price, discount, total, type)
SELECT id, '%s', %s, '%s', %s, 0, 0, '%s' FROM tickets WHERE ticket_ref = 'SEED-001';
`, escapeSQL(product), rec[1], escapeSQL(unit), rec[3], escapeSQL(lineType))
		rows++
	}
	return rows, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
