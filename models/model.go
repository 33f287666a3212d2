// Package models implements the lag-2 linear predictor trained by the lagfit package. A
// prediction for the observation at i+2 is
//
//	yhat = theta[0]*x[i+1] + theta[1]*x[i] + theta[2]
//
// and every function here works over a whole series of such (x[i], x[i+1], x[i+2]) triples.
package models

// Lags is the number of preceding observations the predictor looks at.
const Lags = 2

// NumParams is the length of every parameter vector, one weight per lag plus the bias.
const NumParams = Lags + 1
