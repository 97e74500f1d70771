package smtp_client

type SmtpServerList struct {
	Servers []SmtpServer `json:"servers" yaml:"servers"`
	From    string       `json:"from" yaml:"from"`
	ReplyTo []string     `json:"reply_to" yaml:"reply_to"`
}

type SmtpServer struct {
	Host               string `json:"host" yaml:"host"`
	Port               int    `json:"port" yaml:"port"`
	Connections        int    `json:"connections" yaml:"connections"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	AuthData           struct {
		Username string `json:"user" yaml:"user"`
		Password string `json:"password" yaml:"password"`
	} `json:"auth" yaml:"auth"`
	SendTimeout int `json:"send_timeout" yaml:"send_timeout"`
}

// SetPassword sets the password for SMTP authentication
func (s *SmtpServer) SetPassword(password string) {
	s.AuthData.Password = password
}
