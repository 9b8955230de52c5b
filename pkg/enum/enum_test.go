package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color string

var (
	red   = New(color("red"))
	green = New(color("green"))
)

func Test_ToEnum(t *testing.T) {
	got, err := ToEnum[color]("red")
	require.NoError(t, err)
	require.Equal(t, red, got)

	got, err = ToEnum[color]("green")
	require.NoError(t, err)
	require.Equal(t, green, got)

	_, err = ToEnum[color]("blue")
	require.Error(t, err)
}

type unregistered string

func Test_ToEnum_unknownType(t *testing.T) {
	_, err := ToEnum[unregistered]("anything")
	require.Error(t, err)
}
