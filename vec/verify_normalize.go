//go:build vec_verify

package vec

import (
	"fmt"

	"github.com/chewxy/math32"
)

const unitLengthEpsilon = 1e-5

func verifyNormalized(in, out Vec3) {
	if in.Magnitude() == 0 || math32.IsInf(in.Magnitude(), 0) {
		return
	}
	if math32.Abs(out.Magnitude()-1) > unitLengthEpsilon {
		panic(fmt.Sprintf("vec: normalizing %v produced %v with magnitude %v", in, out, out.Magnitude()))
	}
}
