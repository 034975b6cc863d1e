package primvec

import (
	"fmt"
	"math"
)

// DefaultCapacity is the number of slots allocated by New when no
// explicit configuration is provided.
const DefaultCapacity = 10

// DetermineCapacity generates a Config struct appropriate for a vector
// that will hold expectedEntries elements without reallocating.  The
// capacity follows the same doubling sequence the vector uses when it
// grows on its own, starting from DefaultCapacity.  Counts too large to
// double up to are used as is.
func DetermineCapacity(expectedEntries int) Config {
	c := DefaultCapacity
	for c < expectedEntries {
		if c > math.MaxInt/2 {
			return Config{InitialCapacity: expectedEntries}
		}
		c <<= 1
	}
	return Config{InitialCapacity: c}
}

// Config controls the initial allocation of a vector
type Config struct {
	// The number of element slots to allocate up front.  Zero is
	// legal and yields an empty buffer that grows on first insert.
	InitialCapacity int
}

// BytesRequired reports the amount of space the backing buffer of a
// vector of kind k occupies in ram (and, plus HeaderSize, on disk when
// full).
func (c *Config) BytesRequired(k Kind) uint {
	return uint(c.InitialCapacity) * k.Size()
}

// ExplainIndent will print an indented summary of the configuration to stdout
func (c *Config) ExplainIndent(indent string, k Kind) {
	fmt.Printf("%s%8d slots of %s (%d bytes each)\n", indent, c.InitialCapacity, k, k.Size())
	fmt.Printf("%s%8d slots after the next growth\n", indent, grownCapacity(c.InitialCapacity, c.InitialCapacity+1))
	fmt.Printf("%s   %s buffer size expected\n", indent, humanBytes(c.BytesRequired(k)))
}

// Explain will print a summary of the configuration to stdout
func (c *Config) Explain(k Kind) {
	c.ExplainIndent("", k)
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
