package model

type Design struct {
	BaseModel
	ProjectName         string   `gorm:"type:varchar(200);not null" json:"projectName" form:"projectName"`
	MainImage           string   `gorm:"type:text;not null" json:"mainImage" form:"mainImage"`
	SubImages           []string `gorm:"type:jsonb;serializer:json" json:"subImages" form:"subImages"`
	Investor            string   `gorm:"type:varchar(200)" json:"investor" form:"investor"`
	ImplementationYear  int      `gorm:"type:int" json:"implementationYear" form:"implementationYear"`
	ProjectType         string   `gorm:"type:varchar(100)" json:"projectType" form:"projectType"`
	Address             string   `gorm:"type:text" json:"address" form:"address"`
	InvestmentLevel     string   `gorm:"type:varchar(100)" json:"investmentLevel" form:"investmentLevel"`
	LandArea            string   `gorm:"type:varchar(100);not null" json:"landArea" form:"landArea"`
	ConstructionArea    string   `gorm:"type:varchar(100)" json:"constructionArea" form:"constructionArea"`
	Floors              string   `gorm:"type:varchar(50)" json:"floors" form:"floors"`
	Functionality       string   `gorm:"type:text" json:"functionality" form:"functionality"`
	DesignUnit          string   `gorm:"type:varchar(200)" json:"designUnit" form:"designUnit"`
	DetailedDescription string   `gorm:"type:text" json:"detailedDescription" form:"detailedDescription"`
	IsHighlight         bool     `gorm:"not null;default:false" json:"isHighlight" form:"isHighlight"`

	CategoryID string   `gorm:"type:text;not null" json:"categoryId" form:"categoryId"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
}

func (d Design) TableName() string {
	return "designs"
}

// AllImages returns the main image followed by every gallery image,
// used for storage cleanup when a design is removed.
func (d Design) AllImages() []string {
	images := make([]string, 0, len(d.SubImages)+1)
	if d.MainImage != "" {
		images = append(images, d.MainImage)
	}
	images = append(images, d.SubImages...)
	return images
}
