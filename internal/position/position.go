/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position represents a chess position as a set of piece
// bitboards plus derived occupancy, and implements FEN ingestion and
// copy-make move application.
//
// Create a new instance with NewPosition() for the standard start
// position, or NewPositionFen(fen) for an arbitrary FEN string.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/frankkopp/enginecore/internal/assert"
	myLogging "github.com/frankkopp/enginecore/internal/logging"
	. "github.com/frankkopp/enginecore/internal/types"
)

var log *logging.Logger

// StartFen is the FEN of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position represents the full state of a chess board: twelve piece
// sets, their derived occupancy aggregates, side to move, castling
// rights, en-passant square and halfmove clock.
//
// Position is a plain value type. MakeMove never mutates its receiver;
// it returns a new, independent Position, so the caller may freely
// keep and recurse on both the parent and the successor.
type Position struct {
	pieces    [ColorLength][PtLength]Bitboard
	occupancy [ColorLength]Bitboard

	board      [SqLength]Piece
	kingSquare [ColorLength]Square

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
}

// NewPosition returns the standard chess starting position.
func NewPosition() Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("start position fen did not parse: %v", err))
	}
	return p
}

// NewPositionFen parses fen and returns the Position it describes. An
// error is returned instead of a partial position when fen is malformed.
func NewPositionFen(fen string) (Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	Init()
	var p Position
	for sq := SqA1; sq < SqNone; sq++ {
		p.board[sq] = PieceNone
	}
	p.enPassantSquare = SqNone
	if err := p.parseFen(fen); err != nil {
		log.Errorf("fen not valid, position can't be created: %s", err)
		return Position{}, err
	}
	return p, nil
}

// SideToMove returns the color to move.
func (p Position) SideToMove() Color {
	return p.sideToMove
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// OccupiedBb returns the union of all pieces of color c.
func (p Position) OccupiedBb(c Color) Bitboard {
	return p.occupancy[c]
}

// OccupiedAll returns the union of all pieces of both colors.
func (p Position) OccupiedAll() Bitboard {
	return p.occupancy[White] | p.occupancy[Black]
}

// PieceAt returns the piece on sq, or PieceNone if sq is empty.
func (p Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// KingSquare returns the square of color c's king.
func (p Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// CastlingRights returns the position's current castling rights.
func (p Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the en-passant target square, or SqNone if
// the last move was not a double pawn push.
func (p Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// HalfMoveClock returns the number of halfmoves since the last pawn
// move or capture.
func (p Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// IsSquareAttacked reports whether any piece of color by attacks sq, on
// the current occupancy. Implemented by reverse-attack symmetry: a
// piece of type pt on sq attacks the same squares a piece of type pt
// placed on sq would attack, so the query places a virtual piece of
// each attacking kind on sq and tests for intersection with the
// attacker's real piece sets of that kind.
func (p Position) IsSquareAttacked(sq Square, by Color) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.pieces[by][King] != 0 {
		return true
	}
	occupied := p.OccupiedAll()
	rookOrQueen := p.pieces[by][Rook] | p.pieces[by][Queen]
	if GetAttacksBb(Rook, sq, occupied)&rookOrQueen != 0 {
		return true
	}
	bishopOrQueen := p.pieces[by][Bishop] | p.pieces[by][Queen]
	if GetAttacksBb(Bishop, sq, occupied)&bishopOrQueen != 0 {
		return true
	}
	return false
}

// MakeMove applies m to the position and returns the resulting
// successor. p itself is a value-receiver copy of the caller's
// position, so mutating it here and returning it is copy-make: the
// caller's own Position is left untouched and the new one is
// independent, safe to recurse on alongside its parent.
func (p Position) MakeMove(m Move) Position {
	us := p.sideToMove
	them := us.Flip()
	from := m.From()
	to := m.To()

	movedPiece := p.board[from]
	movedType := movedPiece.TypeOf()
	if assert.DEBUG {
		assert.Assert(movedPiece != PieceNone, "no piece to move on %s", from)
		assert.Assert(movedPiece.ColorOf() == us, "piece on %s does not belong to side to move", from)
	}

	// Capture removal happens before the mover lands on `to`, since for
	// en passant the captured pawn is not on `to` at all.
	if m.IsCapture() {
		if m.IsEnPassant() {
			capturedSq := to - Square(8)
			if us == Black {
				capturedSq = to + Square(8)
			}
			p.removePiece(capturedSq)
		} else {
			p.removePiece(to)
		}
	}

	// Any move onto or off of a king or rook home square forfeits the
	// corresponding rights: a king leaving e1/e8, a rook leaving its
	// corner, or a capture landing on an enemy rook's corner.
	if p.castlingRights != CastlingNone {
		p.castlingRights.Remove(GetCastlingRights(from) | GetCastlingRights(to))
	}

	p.removePiece(from)
	p.putPieceAt(movedPiece, to)

	if m.IsCastle() {
		var rookFrom, rookTo Square
		if to.FileOf() == FileG {
			rookFrom, rookTo = SquareOf(FileH, to.RankOf()), SquareOf(FileF, to.RankOf())
		} else {
			rookFrom, rookTo = SquareOf(FileA, to.RankOf()), SquareOf(FileD, to.RankOf())
		}
		rook := p.board[rookFrom]
		p.removePiece(rookFrom)
		p.putPieceAt(rook, rookTo)
	}

	if m.IsPromotion() {
		p.removePiece(to)
		p.putPieceAt(MakePiece(us, m.PromotionType()), to)
	}

	if movedType == King {
		p.kingSquare[us] = to
	}

	p.sideToMove = them
	p.enPassantSquare = SqNone
	if m.IsDoublePush() {
		if us == White {
			p.enPassantSquare = to - Square(8)
		} else {
			p.enPassantSquare = to + Square(8)
		}
	}

	if movedType == Pawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if us == Black {
		p.fullMoveNumber++
	}

	return p
}

// removePiece clears sq, keeping the mailbox, piece bitboards and
// occupancy aggregates in sync. sq must not be empty.
func (p *Position) removePiece(sq Square) {
	piece := p.board[sq]
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = PieceNone
	p.pieces[c][pt].PopSquare(sq)
	p.occupancy[c].PopSquare(sq)
}

// putPieceAt places piece on sq. The caller is responsible for having
// already removed whatever piece previously occupied sq.
func (p *Position) putPieceAt(piece Piece, sq Square) {
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = piece
	p.pieces[c][pt].PushSquare(sq)
	p.occupancy[c].PushSquare(sq)
}

// String renders the FEN followed by an 8x8 board diagram.
func (p Position) String() string {
	var os strings.Builder
	os.WriteString(p.Fen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	return os.String()
}

// StringBoard renders the position as an 8x8 grid of piece letters.
func (p Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, Rank8-r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// Fen renders the position as a FEN string.
func (p Position) Fen() string {
	var fen strings.Builder
	for r := Rank8; ; r-- {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				emptySquares++
				continue
			}
			if emptySquares > 0 {
				fen.WriteString(strconv.Itoa(emptySquares))
				emptySquares = 0
			}
			fen.WriteString(pc.String())
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r == Rank1 {
			break
		}
		fen.WriteString("/")
	}
	fen.WriteString(" ")
	fen.WriteString(p.sideToMove.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullMoveNumber))
	return fen.String()
}

// /////////////////////////////////////////////////////////////////
// FEN parsing
// /////////////////////////////////////////////////////////////////

var regexFenPos = regexp.MustCompile(`^[1-8pPnNbBrRqQkK/]+$`)
var regexSideToMove = regexp.MustCompile(`^[wb]$`)
var regexCastlingRights = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
var regexEnPassant = regexp.MustCompile(`^([a-h][1-8]|-)$`)

// parseFen validates and applies a FEN string to an otherwise zero
// Position. Fields beyond piece placement are optional, in the teacher's
// permissive style: missing fields default to white to move, no castling
// rights, no en-passant square, halfmove clock 0 and move number 1.
func (p *Position) parseFen(fen string) error {
	fenParts := strings.Fields(strings.TrimSpace(fen))
	if len(fenParts) == 0 {
		return errors.New("fen must not be empty")
	}

	ranks := strings.Split(fenParts[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen piece placement must have 8 ranks, got %d", len(ranks))
	}
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen piece placement contains invalid characters")
	}

	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if n, err := strconv.Atoi(string(c)); err == nil {
				f += File(n)
				continue
			}
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character in fen: %q", string(c))
			}
			if !f.IsValid() {
				return fmt.Errorf("rank %d overflows with piece character %q", 8-i, string(c))
			}
			p.putPiece(piece, SquareOf(f, r))
			f++
		}
		if int(f) != 8 {
			return fmt.Errorf("rank %d does not sum to 8 files", 8-i)
		}
	}

	p.sideToMove = White
	p.fullMoveNumber = 1
	p.enPassantSquare = SqNone

	if len(fenParts) >= 2 {
		if !regexSideToMove.MatchString(fenParts[1]) {
			return errors.New("fen side to move must be 'w' or 'b'")
		}
		if fenParts[1] == "b" {
			p.sideToMove = Black
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		for _, c := range fenParts[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			}
		}
	}

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square is malformed")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
		}
	}

	if len(fenParts) >= 5 {
		n, err := strconv.Atoi(fenParts[4])
		if err != nil {
			return fmt.Errorf("fen halfmove clock is not a number: %w", err)
		}
		p.halfMoveClock = n
	}

	if len(fenParts) >= 6 {
		n, err := strconv.Atoi(fenParts[5])
		if err != nil {
			return fmt.Errorf("fen fullmove number is not a number: %w", err)
		}
		if n == 0 {
			n = 1
		}
		p.fullMoveNumber = n
	}

	if assert.DEBUG {
		assert.Assert(p.kingSquare[White].IsValid(), "fen describes a position with no white king")
		assert.Assert(p.kingSquare[Black].IsValid(), "fen describes a position with no black king")
	}

	return nil
}

// putPiece places piece on an empty square during FEN parsing, keeping
// the mailbox, piece bitboards and occupancy aggregates all in sync.
func (p *Position) putPiece(piece Piece, sq Square) {
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = piece
	p.pieces[c][pt].PushSquare(sq)
	p.occupancy[c].PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
}
