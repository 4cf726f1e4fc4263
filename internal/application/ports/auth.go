package ports

type Auth interface {
	GenerateToken(email, requestPassword string) (string, error)
}
