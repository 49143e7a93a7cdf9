package constants

// Order row status values, as written to the sheet.
const (
	STATUS_PENDING  = "Pendente"
	STATUS_APPROVED = "Aprovado"
	DELIVERED_YES   = "Sim"
)

// Payment methods accepted at checkout.
const (
	PAYMENT_PIX  = "Pix"
	PAYMENT_CASH = "Dinheiro"
)

var PAYMENT_METHODS = []string{PAYMENT_PIX, PAYMENT_CASH}

// Sheet names inside the workbook.
const (
	SHEET_ORDERS = "Pedidos"
	SHEET_CONFIG = "Config"
)

const (
	MAX_QUANTITY = 20
	PHONE_DIGITS = 11
)

// Messages returned to clients.
const (
	ERROR_INPUT             = "Dados inválidos"
	ERROR_INTERNAL_ERROR    = "Erro interno"
	MISSING_LOGIN_INPUT     = "Informe usuário e senha"
	INVALID_CREDENTIALS     = "Credenciais inválidas."
	SESSION_NOT_FOUND       = "Sessão de pedido não encontrada"
	NO_DATES_SELECTED       = "Selecione 'Quero Pedir' em uma das datas para montar sua quentinha."
	MISSING_NAME_OR_PHONE   = "Por favor, preencha Nome e Telefone."
	INVALID_PHONE           = "Telefone deve ter 11 dígitos (DDD + número)."
	ORDER_NOT_FOUND         = "Não foi possível encontrar o pedido na planilha."
	ORDER_NOT_APPROVED      = "Pedido ainda não aprovado, não pode ser marcado como entregue."
	ORDER_REGISTERED        = "Pedido(s) registrado(s) com sucesso! Você receberá uma confirmação via WhatsApp após aprovação."
	SIDE_DISHES             = "Todas as opções acompanham Baião de dois, Macarrão, Farofa e Salada cozida."
	CASH_INSTRUCTIONS       = "Após finalizar o pedido, dirija-se ao caixa para realizar o pagamento e aprovar seu pedido."
	DATE_CLOSED             = "Prazo encerrado para esta data"
	DEADLINE_UNDEFINED      = "Prazo não definido"
	INVALID_DEADLINE_FORMAT = "Prazo com formato inválido, usando prazo padrão"
)
