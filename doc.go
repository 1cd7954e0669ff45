// Package arith implements a calculator for one-line arithmetic expressions.
//
// Evaluation happens in three stages. Lex splits a line into tokens, Parse
// builds an expression tree from the tokens, and Interpret reduces the tree
// to a float64. Eval runs all three.
//
// The syntax has numbers, parentheses, the binary operators + - * /, and the
// unary operators + and -. Multiplication and division bind tighter than
// addition and subtraction. Unary minus negates; unary plus takes the absolute
// value, so "+(-5)" is 5.
//
// No stage stops at the first problem. Each returns its best-effort result
// along with an ErrorList describing everything that went wrong, with source
// positions suitable for pointing at the offending column. Division by zero
// evaluates to 0 rather than an infinity.
package arith
