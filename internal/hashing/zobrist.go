package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numColouredPieces = int(chess.NumPieceValues) << chess.PieceShift

// Zobrist keys for pieces, castling, en passant file and side to move.
var (
	zobristPiece     [numColouredPieces][chess.NumSquares]uint64
	zobristCastle    [chess.AllCastling + 1]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so signatures are stable across runs.
	rnd := rand.New(rand.NewSource(0x5EED))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Signature returns the repetition signature of a position: a Zobrist hash
// over piece placement, side to move, castling rights and the en passant
// file. The en passant file only counts when a pawn of the side to move
// stands ready to capture onto the target, so a double push that cannot be
// answered en passant does not make an otherwise identical position distinct.
// Clocks and history are not part of the signature.
func Signature(pos *chess.Position) uint64 {
	var key uint64

	for sq, p := range pos.Board {
		if p != chess.Empty {
			key ^= zobristPiece[p][sq]
		}
	}

	if pos.ToMove == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[pos.Castling&chess.AllCastling]

	if EnPassantCapturable(pos) {
		key ^= zobristEnPassant[pos.EnPassant.Col()-chess.FirstCol]
	}

	return key
}

// EnPassantCapturable reports whether a pawn of the side to move is
// positioned to capture onto the en passant target. Pins are not considered.
func EnPassantCapturable(pos *chess.Position) bool {
	if !pos.EnPassant.Valid() {
		return false
	}
	pawn := chess.MakeColouredPiece(pos.ToMove, chess.Pawn)
	back := -chess.ColourOffset(pos.ToMove)
	for _, dc := range []int{-1, 1} {
		if sq, ok := pos.EnPassant.Offset(dc, back); ok && pos.Board.At(sq) == pawn {
			return true
		}
	}
	return false
}
