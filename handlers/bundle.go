package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Chat   *ChatHandler
	Auth   *AuthHandler
	Admin  *AdminHandler
	Public *PublicHandler
}
