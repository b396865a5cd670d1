// biztimectl aplica migraciones, carga datos de ejemplo y emite tokens.
//
// Uso:
//
//	biztimectl migrate
//	biztimectl seed --migrate
//	biztimectl token --role admin
package main

import "github.com/jhoicas/biztime-api/internal/cli"

func main() {
	cli.Execute()
}
