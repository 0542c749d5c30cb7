// seed genera un script SQL de datos demo (agencias y sub-cuentas) a partir de un CSV.
//
// Uso: go run ./cmd/seed [ruta/agencias.csv]
// Por defecto busca agencias.csv en el directorio actual.
// El CSV viene de exportaciones de hojas de cálculo en ISO-8859-1 (tildes y eñes),
// con columnas: agencia, email, ciudad, sub_cuenta.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type agencySeed struct {
	id          string
	name        string
	email       string
	city        string
	subAccounts []subAccountSeed
}

type subAccountSeed struct {
	id   string
	name string
}

func main() {
	csvPath := "agencias.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = 4
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Agrupar filas por agencia preservando el orden de aparición
	byName := make(map[string]*agencySeed)
	var order []string
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "agencia") {
			continue // cabecera
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			continue
		}
		a, ok := byName[name]
		if !ok {
			a = &agencySeed{
				id:    uuid.New().String(),
				name:  name,
				email: strings.TrimSpace(rec[1]),
				city:  strings.TrimSpace(rec[2]),
			}
			byName[name] = a
			order = append(order, name)
		}
		if sub := strings.TrimSpace(rec[3]); sub != "" {
			a.subAccounts = append(a.subAccounts, subAccountSeed{
				id:   uuid.New().String(),
				name: sub,
			})
		}
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos demo: agencias y sub-cuentas\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	totalSubs := 0
	for _, name := range order {
		a := byName[name]
		fmt.Fprintf(out, "INSERT INTO agencies (id, name, company_email, city)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s')\n",
			a.id, escapeSQL(a.name), escapeSQL(a.email), escapeSQL(a.city))
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
		for _, s := range a.subAccounts {
			fmt.Fprintf(out, "INSERT INTO sub_accounts (id, agency_id, name)\n")
			fmt.Fprintf(out, "VALUES ('%s', '%s', '%s')\n", s.id, a.id, escapeSQL(s.name))
			out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
			totalSubs++
		}
		out.WriteString("\n")
	}

	fmt.Printf("Generado %s: %d agencias, %d sub-cuentas\n", outPath, len(order), totalSubs)
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
