package exercise

// SolveNQueens returns every placement of n non-attacking queens on an n×n
// board. Each solution is a slice of n row strings using 'Q' for a queen
// and '.' for an empty square.
//
// The search backtracks row by row, trying columns left to right, so
// solutions are produced in a deterministic order. Attack checks scan the
// column and both upper diagonals of the partial board; rows below the
// current one are empty by construction.
func SolveNQueens(n int) [][]string {
	result := [][]string{}
	if n <= 0 {
		return result
	}

	board := make([][]byte, n)
	for i := range board {
		board[i] = make([]byte, n)
		for j := range board[i] {
			board[i][j] = '.'
		}
	}

	var safe func(row, col int) bool
	safe = func(row, col int) bool {
		for i := 0; i < row; i++ {
			if board[i][col] == 'Q' {
				return false
			}
		}
		for i, j := row-1, col-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
			if board[i][j] == 'Q' {
				return false
			}
		}
		for i, j := row-1, col+1; i >= 0 && j < n; i, j = i-1, j+1 {
			if board[i][j] == 'Q' {
				return false
			}
		}
		return true
	}

	var place func(row int)
	place = func(row int) {
		if row == n {
			solution := make([]string, n)
			for i, r := range board {
				solution[i] = string(r)
			}
			result = append(result, solution)
			return
		}
		for col := 0; col < n; col++ {
			if !safe(row, col) {
				continue
			}
			board[row][col] = 'Q'
			place(row + 1)
			board[row][col] = '.'
		}
	}

	place(0)
	return result
}
