package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyDue(t *testing.T) {
	today := "2024-03-10"

	require.Equal(t, DueOverdue, ClassifyDue("2024-03-09", today))
	require.Equal(t, DueOverdue, ClassifyDue("2023-12-31", today))
	require.Equal(t, DueToday, ClassifyDue("2024-03-10", today))
	require.Equal(t, DueUpcoming, ClassifyDue("2024-03-11", today))
	require.Equal(t, DueUpcoming, ClassifyDue("2025-01-01", today))
}
