package subscriptions

type Subscription struct {
	User     string `gorm:"column:u;primaryKey;size:128"`
	UserType string `gorm:"column:utp;primaryKey;size:32"`
	AlarmID  string `gorm:"column:alarm_id;primaryKey;size:256"`
	Level    int    `gorm:"column:level;not null;autoIncrement:false"`
}

func (Subscription) TableName() string {
	return "alarmer_sub"
}

type Subscriber struct {
	User     string `gorm:"column:u"`
	UserType string `gorm:"column:utp"`
}
