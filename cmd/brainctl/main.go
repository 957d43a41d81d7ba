// brainctl herramientas de operación de la consola: firmar tokens para las
// rutas protegidas y resolver nombres sin levantar el servidor.
//
// Uso:
//
//	go run ./cmd/brainctl token --user ops@example.com --role viewer
//	go run ./cmd/brainctl resolve product 防爆空调机
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
