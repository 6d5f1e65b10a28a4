//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package movegen generates pseudo-legal chess moves for a position
// using bit-parallel set operations over the piece bitboards, and
// filters them down to legal moves by probing whether the mover's own
// king is attacked after the move is made.
//
// Pawns, knights and kings are generated a whole piece set at a time
// with shifts and masks; rooks, bishops and queens route through the
// magic bitboard tables in internal/types. Castling legality (transit
// squares unattacked, king not currently in check) is checked at
// generation time rather than deferred, so every move GenerateLegalMoves
// returns is ready to apply without further validation beyond MakeMove
// itself.
package movegen

import (
	"github.com/frankkopp/enginecore/internal/movelist"
	"github.com/frankkopp/enginecore/internal/position"
	. "github.com/frankkopp/enginecore/internal/types"
)

// GeneratePseudoLegalMoves fills and returns a MoveList with every
// pseudo-legal move for the side to move in pos: moves that obey
// piece-movement rules but may leave the mover's own king in check.
func GeneratePseudoLegalMoves(pos *position.Position) *movelist.MoveList {
	var ml movelist.MoveList
	generatePawnMoves(pos, &ml)
	generateKnightMoves(pos, &ml)
	generateKingMoves(pos, &ml)
	generateCastlingMoves(pos, &ml)
	generateSliderMoves(pos, Bishop, &ml)
	generateSliderMoves(pos, Rook, &ml)
	generateSliderMoves(pos, Queen, &ml)
	return &ml
}

// GenerateLegalMoves returns only the moves from GeneratePseudoLegalMoves
// that do not leave the mover's own king attacked. This is the
// "generate pseudo-legal, then filter" design: pinned pieces and check
// evasion are not computed incrementally, they fall out of the same
// post-move attack probe perft uses.
func GenerateLegalMoves(pos *position.Position) *movelist.MoveList {
	pseudo := GeneratePseudoLegalMoves(pos)
	var legal movelist.MoveList
	us := pos.SideToMove()
	pseudo.ForEach(func(m Move) {
		next := pos.MakeMove(m)
		if !next.IsSquareAttacked(next.KingSquare(us), next.SideToMove()) {
			legal.PushBack(m)
		}
	})
	return &legal
}

// HasLegalMove reports whether pos has at least one legal move, without
// building the full list. Used to detect checkmate and stalemate.
func HasLegalMove(pos *position.Position) bool {
	pseudo := GeneratePseudoLegalMoves(pos)
	us := pos.SideToMove()
	found := false
	pseudo.ForEach(func(m Move) {
		if found {
			return
		}
		next := pos.MakeMove(m)
		if !next.IsSquareAttacked(next.KingSquare(us), next.SideToMove()) {
			found = true
		}
	})
	return found
}

// ///////////////////////////////////////////////////////////////////
// Pawns
// ///////////////////////////////////////////////////////////////////

func generatePawnMoves(pos *position.Position, ml *movelist.MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	pawns := pos.PiecesBb(us, Pawn)
	empty := ^pos.OccupiedAll()
	enemies := pos.OccupiedBb(them)

	pushDir := us.PawnPushDirection()
	promoRank := us.PromotionRankBb()

	// single push
	singlePush := ShiftBitboard(pawns, pushDir) & empty
	for targets := singlePush; targets != BbZero; {
		to := targets.PopLsb()
		from := reverseStep(to, pushDir)
		addPawnAdvance(ml, from, to, promoRank)
	}

	// double push: single-push result shifted one more rank, landing only
	// on the color's double-push destination rank (rank 4 for White, rank
	// 5 for Black), which is only reachable when the pawn started on its
	// home rank two ranks further back.
	doublePush := ShiftBitboard(singlePush, pushDir) & empty & us.DoublePushRankBb()
	for targets := doublePush; targets != BbZero; {
		to := targets.PopLsb()
		from := reverseStep(reverseStep(to, pushDir), pushDir)
		ml.PushBack(NewMove(from, to, FlagDoublePush))
	}

	// captures: shift diagonally, masking off the file that would wrap.
	var left, right Direction
	if us == White {
		left, right = Northwest, Northeast
	} else {
		left, right = Southwest, Southeast
	}
	captureLeft := ShiftBitboard(pawns, left) & enemies
	captureRight := ShiftBitboard(pawns, right) & enemies
	for targets := captureLeft; targets != BbZero; {
		to := targets.PopLsb()
		from := reverseStep(to, left)
		addPawnCapture(ml, from, to, promoRank)
	}
	for targets := captureRight; targets != BbZero; {
		to := targets.PopLsb()
		from := reverseStep(to, right)
		addPawnCapture(ml, from, to, promoRank)
	}

	// en passant
	if ep := pos.EnPassantSquare(); ep.IsValid() {
		epBb := ep.Bb()
		if ShiftBitboard(pawns, left)&epBb != BbZero {
			ml.PushBack(NewMove(reverseStep(ep, left), ep, FlagEnPassant))
		}
		if ShiftBitboard(pawns, right)&epBb != BbZero {
			ml.PushBack(NewMove(reverseStep(ep, right), ep, FlagEnPassant))
		}
	}
}

// reverseStep recovers the square a pawn shift originated from, the
// inverse of ShiftBitboard: stepping to in the opposite direction.
func reverseStep(to Square, d Direction) Square {
	return to.To(opposite(d))
}

func opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Northwest:
		return Southeast
	case Southeast:
		return Northwest
	default:
		return -d
	}
}

func addPawnAdvance(ml *movelist.MoveList, from, to Square, promoRank Bitboard) {
	if to.Bb()&promoRank != BbZero {
		ml.PushBack(NewMove(from, to, FlagPromoQ))
		ml.PushBack(NewMove(from, to, FlagPromoR))
		ml.PushBack(NewMove(from, to, FlagPromoB))
		ml.PushBack(NewMove(from, to, FlagPromoN))
		return
	}
	ml.PushBack(NewMove(from, to, FlagQuiet))
}

func addPawnCapture(ml *movelist.MoveList, from, to Square, promoRank Bitboard) {
	if to.Bb()&promoRank != BbZero {
		ml.PushBack(NewMove(from, to, FlagCapturePromoQ))
		ml.PushBack(NewMove(from, to, FlagCapturePromoR))
		ml.PushBack(NewMove(from, to, FlagCapturePromoB))
		ml.PushBack(NewMove(from, to, FlagCapturePromoN))
		return
	}
	ml.PushBack(NewMove(from, to, FlagCapture))
}

// ///////////////////////////////////////////////////////////////////
// Knights, kings, sliders: a shared from/to emission helper, since all
// three classify a target purely by whether it holds a friendly or
// enemy piece.
// ///////////////////////////////////////////////////////////////////

func emitTargets(ml *movelist.MoveList, from Square, targets Bitboard, pos *position.Position) {
	for t := targets; t != BbZero; {
		to := t.PopLsb()
		if pos.PieceAt(to) == PieceNone {
			ml.PushBack(NewMove(from, to, FlagQuiet))
		} else {
			ml.PushBack(NewMove(from, to, FlagCapture))
		}
	}
}

func generateKnightMoves(pos *position.Position, ml *movelist.MoveList) {
	us := pos.SideToMove()
	friendly := pos.OccupiedBb(us)
	for knights := pos.PiecesBb(us, Knight); knights != BbZero; {
		from := knights.PopLsb()
		targets := GetPseudoAttacks(Knight, from) &^ friendly
		emitTargets(ml, from, targets, pos)
	}
}

func generateKingMoves(pos *position.Position, ml *movelist.MoveList) {
	us := pos.SideToMove()
	friendly := pos.OccupiedBb(us)
	from := pos.KingSquare(us)
	targets := GetPseudoAttacks(King, from) &^ friendly
	emitTargets(ml, from, targets, pos)
}

func generateSliderMoves(pos *position.Position, pt PieceType, ml *movelist.MoveList) {
	us := pos.SideToMove()
	friendly := pos.OccupiedBb(us)
	occupied := pos.OccupiedAll()
	for pieces := pos.PiecesBb(us, pt); pieces != BbZero; {
		from := pieces.PopLsb()
		targets := GetAttacksBb(pt, from, occupied) &^ friendly
		emitTargets(ml, from, targets, pos)
	}
}

// ///////////////////////////////////////////////////////////////////
// Castling
// ///////////////////////////////////////////////////////////////////

// castlingEmptyMask returns the squares strictly between the king's
// home square and the rook's home square on the given side, which
// must all be empty for the castle to be possible. Note the queenside
// mask covers three squares (b, c, d) while the king only transits
// two; the b-square must be empty but need not be safe.
func castlingEmptyMask(us Color, kingside bool) Bitboard {
	if us == White {
		if kingside {
			return SqF1.Bb() | SqG1.Bb()
		}
		return SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	}
	if kingside {
		return SqF8.Bb() | SqG8.Bb()
	}
	return SqB8.Bb() | SqC8.Bb() | SqD8.Bb()
}

func generateCastlingMoves(pos *position.Position, ml *movelist.MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	rights := pos.CastlingRights()
	occupied := pos.OccupiedAll()
	kingSq := pos.KingSquare(us)

	if pos.IsSquareAttacked(kingSq, them) {
		return
	}

	var oo, ooo CastlingRights
	var kingTo, queenTo Square
	if us == White {
		oo, ooo = CastlingWhiteOO, CastlingWhiteOOO
		kingTo, queenTo = SqG1, SqC1
	} else {
		oo, ooo = CastlingBlackOO, CastlingBlackOOO
		kingTo, queenTo = SqG8, SqC8
	}

	if rights.Has(oo) && occupied&castlingEmptyMask(us, true) == BbZero {
		fSq := kingSq.To(East)
		if !pos.IsSquareAttacked(fSq, them) && !pos.IsSquareAttacked(kingTo, them) {
			ml.PushBack(NewMove(kingSq, kingTo, FlagCastleKingside))
		}
	}
	// The b-file square need not be unattacked for queenside castling:
	// the king never passes through it, only the rook does.
	if rights.Has(ooo) && occupied&castlingEmptyMask(us, false) == BbZero {
		dSq := kingSq.To(West)
		if !pos.IsSquareAttacked(dSq, them) && !pos.IsSquareAttacked(queenTo, them) {
			ml.PushBack(NewMove(kingSq, queenTo, FlagCastleQueen))
		}
	}
}
