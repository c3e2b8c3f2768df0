package skill

const (
	introFormat    = "%s! Eu sou seu assistente com Gemini. O que você quer saber?"
	launchReprompt = "Pode repetir sua pergunta?"

	repeatQuestion = "Pode repetir a pergunta?"
	howCanIHelp    = "Como posso ajudar?"
	anythingElse   = "Quer saber mais alguma coisa?"

	helpText     = "Você pode fazer perguntas ao Gemini. Por exemplo: qual é o passo a passo para abrir MEI?"
	helpReprompt = "Qual sua pergunta?"

	goodbye = "Até logo!"

	notUnderstood = "Desculpe, não entendi. Pode repetir de outro jeito?"
	unsupported   = "Desculpe, não consegui atender esse pedido."
	apology       = "Desculpe, algo deu errado. Pode tentar de novo?"
)
