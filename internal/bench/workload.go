package bench

import "math/rand"

// matrixSeed fixes the PRNG so every run multiplies the same matrices.
const matrixSeed = 12345

// MatrixChecksum fills two n×n float32 matrices with seeded random values,
// multiplies them with a cache-friendly i-k-j loop, and folds the product
// into a 16-bit checksum.
func MatrixChecksum(n int) int16 {
	rng := rand.New(rand.NewSource(matrixSeed))

	a := make([][]float32, n)
	b := make([][]float32, n)
	c := make([][]float32, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float32, n)
		b[i] = make([]float32, n)
		c[i] = make([]float32, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j] = rng.Float32() * 10
			b[i][j] = rng.Float32() * 10
		}
	}

	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i][k]
			row := b[k]
			out := c[i]
			for j := 0; j < n; j++ {
				out[j] += aik * row[j]
			}
		}
	}

	var acc int16
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc += int16(int(c[i][j]) % 32767)
		}
	}
	return acc
}

// deepRecurse accumulates a checksum down one recursion chain of the given
// depth. Heavy stack usage is the point.
func deepRecurse(depth, limit int, acc int16) int16 {
	if depth == limit {
		return acc
	}
	return deepRecurse(depth+1, limit, acc+int16((depth*7+3)%32767))
}

// DeepChecksum runs totalSteps logical recursion steps in chunks of
// chunkDepth, so arbitrarily large workloads never overflow the stack.
func DeepChecksum(totalSteps, chunkDepth int) int16 {
	var acc int16
	done := 0
	for done < totalSteps {
		acc += deepRecurse(0, chunkDepth, 0)
		done += chunkDepth
	}
	return acc
}

// LoopChecksum folds n odd numbers into a 16-bit checksum, the smallest of
// the reference workloads.
func LoopChecksum(n int) int16 {
	var acc int16
	for i := 0; i < n; i++ {
		acc += int16((2*i + 1) % 32767)
	}
	return acc
}
