package common

// TokenTypeBearer is the token type tag returned alongside an issued
// access token and expected in the Authorization header.
const TokenTypeBearer = "bearer"

// AuthorizationHeaderName is the HTTP header carrying the bearer token
// on authenticated requests.
const AuthorizationHeaderName = "Authorization"
