package topic

type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Catalog is the read-only list of study topics, built once at startup.
type Catalog struct {
	topics []Topic
}

func NewCatalog(topics []Topic) *Catalog {
	cp := make([]Topic, len(topics))
	copy(cp, topics)
	return &Catalog{topics: cp}
}

func DefaultCatalog() *Catalog {
	return NewCatalog(defaultTopics)
}

// List returns a copy, callers may not mutate the catalog.
func (c *Catalog) List() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

func (c *Catalog) Find(id string) (Topic, bool) {
	for _, t := range c.topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

var defaultTopics = []Topic{
	{
		ID:          "docker",
		Name:        "Docker e Containerização",
		Description: "Conceitos de containers, imagens, volumes e redes",
		Icon:        "🐳",
	},
	{
		ID:          "aws",
		Name:        "AWS - Serviços Básicos",
		Description: "EC2, S3, RDS, Lambda e outros serviços fundamentais",
		Icon:        "☁️",
	},
	{
		ID:          "cicd",
		Name:        "CI/CD e GitHub Actions",
		Description: "Integração e entrega contínuas, pipelines automatizados",
		Icon:        "🔄",
	},
	{
		ID:          "kubernetes",
		Name:        "Kubernetes",
		Description: "Orquestração de containers, pods, services e deployments",
		Icon:        "⚓",
	},
	{
		ID:          "terraform",
		Name:        "Terraform e IaC",
		Description: "Infrastructure as Code, provisionamento automatizado",
		Icon:        "🏗️",
	},
	{
		ID:          "security",
		Name:        "Segurança em Cloud",
		Description: "IAM, VPC, Security Groups, SSL/TLS",
		Icon:        "🔒",
	},
	{
		ID:          "monitoring",
		Name:        "Monitoramento e Logs",
		Description: "CloudWatch, Prometheus, Grafana, ELK Stack",
		Icon:        "📊",
	},
	{
		ID:          "microservices",
		Name:        "Arquitetura de Microserviços",
		Description: "Design patterns, comunicação entre serviços, API Gateway",
		Icon:        "🏛️",
	},
}
