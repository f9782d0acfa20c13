package server

// Сервер объединяет специфичные HTTP сервера, отвечающие за обработку
// конкретных сущностей. Сейчас у нас только DealServer.
type Server struct {
	DealServer
}

func NewServer(
	dealServer DealServer,
) Server {
	return Server{
		DealServer: dealServer,
	}
}
