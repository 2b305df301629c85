package reedsolomon

// Encoder computes Reed-Solomon error correction codewords.
type Encoder struct {
	field *GF
	// cachedGenerators[d] holds the generator polynomial of degree d with
	// the monic leading term dropped, coefficients from x^(d-1) down to x^0.
	cachedGenerators [][]byte
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GF) *Encoder {
	return &Encoder{
		field:            field,
		cachedGenerators: [][]byte{{}},
	}
}

// buildGenerator returns the coefficients of the generator polynomial
// g(x) = (x - r^0)(x - r^1)...(x - r^(degree-1)), dropping the leading term.
func (e *Encoder) buildGenerator(degree int) []byte {
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	for d := len(e.cachedGenerators); d <= degree; d++ {
		divisor := make([]byte, d)
		divisor[d-1] = 1
		root := 1
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				divisor[j] = byte(e.field.Multiply(int(divisor[j]), root))
				if j+1 < d {
					divisor[j] ^= divisor[j+1]
				}
			}
			root = e.field.Multiply(root, 2)
		}
		e.cachedGenerators = append(e.cachedGenerators, divisor)
	}
	return e.cachedGenerators[degree]
}

// Remainder returns the degree error correction codewords for data: the
// remainder of data(x) * x^degree divided by the generator polynomial,
// highest-degree coefficient first.
func (e *Encoder) Remainder(data []byte, degree int) []byte {
	if degree < 1 || degree > 30 {
		panic("reedsolomon: degree out of range")
	}
	divisor := e.buildGenerator(degree)
	result := make([]byte, degree)
	for _, b := range data {
		factor := int(b ^ result[0])
		copy(result, result[1:])
		result[degree-1] = 0
		for j, coeff := range divisor {
			result[j] ^= byte(e.field.Multiply(int(coeff), factor))
		}
	}
	return result
}
