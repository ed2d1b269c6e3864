// Command vecdemo prints a Vec3 scaled by a scalar.
package main

import (
	"flag"
	"fmt"

	"github.com/viant/vecmath/vector"
)

func main() {
	x := flag.Float64("x", 5, "x component of the demo vector")
	y := flag.Float64("y", 10, "y component of the demo vector")
	z := flag.Float64("z", 15, "z component of the demo vector")
	scale := flag.Float64("scale", 5, "scalar the demo vector is multiplied by")
	flag.Parse()

	v := vector.NewVec3(float32(*x), float32(*y), float32(*z))
	fmt.Println(v.Scale(float32(*scale)))
}
