package field

// Field64 is the 64-bit prime field p64 = 2^32*4294967295 + 1, with an
// 8-byte element encoding and a multiplicative subgroup of order 2^32. It is
// the field Prio3Count is defined over.
var Field64 = newPrime(
	"18446744069414584321",
	8,
	"4294967296",
	7,
	"4294967295",
)

// Field128 is the 128-bit prime field p128 = 2^66*4611686018427387897 + 1,
// with a 16-byte element encoding and a multiplicative subgroup of order
// 2^66. It is the field Prio3Sum and Prio3Histogram are defined over.
var Field128 = newPrime(
	"340282366920938462946865773367900766209",
	16,
	"73786976294838206464",
	7,
	"4611686018427387897",
)
