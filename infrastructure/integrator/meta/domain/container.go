package metadomain

// ContainerStatus é o status de processamento de um media container
// reportado pela API do Meta
type ContainerStatus string

const (
	ContainerStatusProcessing ContainerStatus = "IN_PROGRESS"
	ContainerStatusFinished   ContainerStatus = "FINISHED"
	ContainerStatusError      ContainerStatus = "ERROR"
)

// MediaContainer é o recurso efêmero do lado da plataforma que representa
// uma imagem (ou item de carrossel) em processamento. Nunca é persistido
// localmente; existe apenas durante o loop de polling.
type MediaContainer struct {
	ID     string          `json:"id"`
	Status ContainerStatus `json:"status_code"`
}
