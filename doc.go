// Package calculator evaluates arithmetic expressions on float64 values.
//
// An expression is made of decimal numbers, the binary operators + - * / and
// ^, and parentheses. A minus with no number before it is read as a
// subtraction from zero, so "-2 + 2" is "0 - 2 + 2" and "2 * (-3)" is
// "2 * (0 - 3)". Every operator is left associative, ^ included: "2^3^2" is
// (2^3)^2 = 64.
//
// Evaluation runs in four stages, each of which is exported for callers that
// want to inspect intermediate results: CheckBrackets, Calculator.Split,
// Calculator.ConvertToRPN, and Calculator.EvaluateRPN.
package calculator
