package catalog

import "github.com/teusdrz/firemoto/models"

// offerings is the shop's fixed service catalog. It is never persisted
// and never mutated at runtime.
var offerings = []models.ServiceOffering{
	{ID: "1", Name: "Mecânica Geral", Description: "Diagnóstico completo e reparos de motor, câmbio e sistemas mecânicos", Icon: "wrench", Price: "A partir de R$ 150"},
	{ID: "2", Name: "Injeção Eletrônica", Description: "Diagnóstico e reparo de sistemas de injeção eletrônica e sensores", Icon: "cpu", Price: "A partir de R$ 200"},
	{ID: "3", Name: "Suspensão e Freios", Description: "Manutenção e troca de amortecedores, molas, pastilhas e discos", Icon: "car", Price: "A partir de R$ 180"},
	{ID: "4", Name: "Alinhamento e Balanceamento", Description: "Alinhamento 3D computadorizado e balanceamento de rodas", Icon: "target", Price: "A partir de R$ 120"},
	{ID: "5", Name: "Ar Condicionado Automotivo", Description: "Recarga de gás, higienização e reparo do sistema de A/C", Icon: "thermometer", Price: "A partir de R$ 250"},
	{ID: "6", Name: "Elétrica Automotiva", Description: "Diagnóstico e reparo de sistemas elétricos, alternador e bateria", Icon: "zap", Price: "A partir de R$ 130"},
	{ID: "7", Name: "Troca de Óleo e Filtros", Description: "Troca de óleo sintético ou mineral com filtros de qualidade", Icon: "droplet", Price: "A partir de R$ 180"},
	{ID: "8", Name: "Funilaria e Pintura", Description: "Reparos de lataria, pintura automotiva e polimento", Icon: "paintbrush", Price: "Sob consulta"},
	{ID: "9", Name: "Revisão Completa", Description: "Check-up completo com inspeção de todos os sistemas do veículo", Icon: "clipboard-check", Price: "A partir de R$ 350"},
	{ID: "10", Name: "Embreagem e Câmbio", Description: "Troca e reparo de embreagem, câmbio manual e automático", Icon: "cog", Price: "A partir de R$ 400"},
	{ID: "11", Name: "Direção Hidráulica", Description: "Manutenção e reparo de sistemas de direção hidráulica e elétrica", Icon: "circle", Price: "A partir de R$ 200"},
	{ID: "12", Name: "GNV - Gás Natural", Description: "Instalação, manutenção e vistoria de kit GNV", Icon: "flame", Price: "A partir de R$ 2.500"},
}

// ListServices returns the full catalog. Callers get a fresh slice so
// the catalog itself cannot be mutated.
func ListServices() []models.ServiceOffering {
	out := make([]models.ServiceOffering, len(offerings))
	copy(out, offerings)
	return out
}
