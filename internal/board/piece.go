package board

// Color represents the color of a piece. The drill places a single
// color on the board; Black exists for sprite selection and API
// completeness.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceKind represents the kind of a piece.
type PieceKind uint8

const (
	Queen PieceKind = iota
	Rook
	Bishop
	Knight
	King
	Pawn // defined for completeness, never placed by the drill
	NoPieceKind PieceKind = 6
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case King:
		return "King"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the English piece letter (uppercase, 'P' for pawn).
func (k PieceKind) Char() byte {
	chars := []byte{'Q', 'R', 'B', 'N', 'K', 'P', ' '}
	if k > NoPieceKind {
		return ' '
	}
	return chars[k]
}

// KindFromChar converts a piece letter to a PieceKind.
// Accepts upper- and lowercase.
func KindFromChar(c byte) PieceKind {
	switch c {
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'K', 'k':
		return King
	case 'P', 'p':
		return Pawn
	default:
		return NoPieceKind
	}
}

// DrillKinds are the kinds the drill actually places on the board.
// King and Pawn are excluded: the king's one-step reach makes targets
// trivial, and pawns have no place in a capture-free drill.
var DrillKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}
