package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerSchemePrefix is the expected scheme prefix of the Authorization header.
const BearerSchemePrefix = "Bearer "
