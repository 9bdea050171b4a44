package config_test

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/vancomm/minesweeper/config"
	"github.com/vancomm/minesweeper/mines"
)

func ExampleNewBoard() {
	os.Setenv("BOARD_SIZE", "3")
	os.Setenv("BOARD_BOMBS", "0")
	defer os.Unsetenv("BOARD_SIZE")
	defer os.Unsetenv("BOARD_BOMBS")

	if err := config.SetupLogging(mines.Log); err != nil {
		fmt.Println(err)
		return
	}

	b, err := config.NewBoard(rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := b.Reveal(1, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res)
	fmt.Print(b)
	// Output:
	// won
	// . . .
	// . . .
	// . . .
}
