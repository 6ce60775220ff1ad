// Package main BakeryPro inventory API
//
//	@title			BakeryPro API
//	@version		0.1.0
//	@description	Bakery inventory with product and ingredient photos kept in a git repository
//
//	@host			localhost:3000
//	@BasePath		/api/v1
package main

import "github.com/bakerypro/bakerypro/internal"

func main() {
	internal.Run()
}
