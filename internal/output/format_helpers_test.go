package output

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$120,000.00", FormatCurrency(120000))
	assert.Equal(t, "N/A", FormatCurrency(math.Inf(1)))
	assert.Equal(t, "-6.25%", FormatPercentage(-6.25))
	assert.Equal(t, "N/A", FormatPercentage(math.NaN()))
	assert.Equal(t, "3450.0", FormatNumber(3450, 1))
	assert.Equal(t, "2.00", FormatNumber(2, 2))
	assert.Equal(t, "N/A", FormatNumber(math.NaN(), 2))
	assert.Equal(t, "", csvNumber(math.NaN()))
	assert.Equal(t, "-0.50", csvNumber(-0.5))
}
