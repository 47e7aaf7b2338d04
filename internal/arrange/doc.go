// Package arrange lays out addition and subtraction problems in vertical
// columns, the way they are written out by hand.
//
// # Problems
//
// A problem is a string of three whitespace-separated tokens:
//
//	"32 + 698"
//	"3801 - 2"
//
// Operands are non-negative integers of at most four digits and the operator
// is '+' or '-'. At most five problems are arranged at once.
//
// # Arranging
//
// Arrange validates a problem set and returns a tagged result:
//
//	arrangement, err := arrange.Arrange([]string{"32 + 8", "1 - 3801"}, arrange.WithSolutions(true))
//	if err != nil {
//		var verr *arrange.ValidationError
//		if errors.As(err, &verr) {
//			// verr.Kind identifies the failed check
//		}
//	}
//	fmt.Println(arrangement)
//
// produces:
//
//	  32         1
//	+  8    - 3801
//	----    ------
//	  40     -3800
//
// Each problem gets its own column width, max(len(a), len(b)) + 2, and
// columns after the first are separated by a four-space gutter.
//
// Format is the text-mode entry point. It returns either the arrangement or
// the validation message as a plain string:
//
//	arrange.Format([]string{"3 * 6"}, false) // "Error: Operator must be '+' or '-'."
//
// # Validation Order
//
// The problem count is checked first. Problems are then checked one at a
// time, in input order, and the first failing check wins:
//
//  1. exactly three tokens
//  2. operands at most four characters
//  3. operands contain only digits
//  4. operator is '+' or '-'
package arrange
