package memory

import "go-portfolio-backend/internal/domain"

// DefaultProjects is the portfolio catalog. Edit here to add or update
// projects; the API layer only ever reads this data.
func DefaultProjects() []domain.Project {
	return []domain.Project{
		{
			ID:       "microfinance-mis",
			Title:    "Microfinance Management System",
			Category: "development",
			Meta:     "Full-Stack Development • MERN Stack",
			Description: "Enterprise MIS with loan workflows, customer tracking, analytics, and RBAC. " +
				"Improved operational efficiency by 35% and reduced manual errors.",
			LongDescription: `Developed a comprehensive microfinance management information system using the MERN stack.
The system includes loan application workflows, customer relationship management,
real-time analytics dashboard, and role-based access control (RBAC).

Key achievements:
• Improved operational efficiency by 35%
• Reduced manual data entry errors by 90%
• Streamlined loan approval process from 5 days to 2 days
• Implemented automated reporting for regulatory compliance`,
			Technologies: []string{"MongoDB", "Express.js", "React.js", "Node.js", "JWT", "Chart.js"},
			Tags:         []string{"MongoDB", "Express", "React", "Node.js", "RBAC"},
			Image:        "https://images.unsplash.com/photo-1551434678-e076c223a692?w=800&h=400&fit=crop",
			Date:         "2024-08-15",
			Featured:     true,
		},
		{
			ID:       "network-redesign",
			Title:    "Network Infrastructure Redesign",
			Category: "networking",
			Meta:     "Network Engineering • Cisco & pfSense",
			Description: "Complete LAN/WAN redesign with firewall rules, VPN setup, and redundancy planning. " +
				"Achieved 99.9% uptime and significantly improved security posture.",
			LongDescription: `Led a comprehensive network infrastructure redesign for SyncFusion Software Services.
The project involved redesigning the entire LAN/WAN architecture, implementing
robust security policies, and ensuring high availability.

Key achievements:
• Achieved 99.9% network uptime
• Reduced network-related incidents by 80%
• Implemented secure VPN access for remote workers
• Configured pfSense firewall with advanced threat detection`,
			Technologies: []string{"Cisco IOS", "pfSense", "VLAN", "VPN", "Network Monitoring"},
			Tags:         []string{"Cisco", "pfSense", "VLAN", "VPN"},
			Image:        "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=800&h=400&fit=crop",
			Date:         "2023-12-10",
			Featured:     true,
		},
		{
			ID:       "cloud-migration",
			Title:    "Cloud Migration & Hardening",
			Category: "cloud",
			Meta:     "Cloud Engineering • Azure & AWS",
			Description: "Lift-and-shift migration with IAM baselines, backup policies, and cost monitoring. " +
				"Achieved 40% cost reduction while improving security posture.",
			LongDescription: `Executed a comprehensive cloud migration strategy moving critical applications
from on-premises infrastructure to Azure and AWS. The project included security
hardening, cost optimization, and disaster recovery planning.

Key achievements:
• 40% reduction in infrastructure costs
• Improved system reliability and scalability
• Implemented automated backup and disaster recovery
• Enhanced security with cloud-native tools`,
			Technologies: []string{"Microsoft Azure", "AWS", "Terraform", "Docker", "Kubernetes"},
			Tags:         []string{"Azure", "AWS", "Security", "Migration"},
			Image:        "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=800&h=400&fit=crop",
			Date:         "2023-10-05",
			Featured:     true,
		},
		{
			ID:       "automation-toolkit",
			Title:    "Automation Toolkit",
			Category: "development",
			Meta:     "Development • Python & Bash",
			Description: "Automated backups, alerts, and reports to reduce toil and incidents. " +
				"Saved 15+ hours per week in manual operations tasks.",
			LongDescription: `Developed a comprehensive automation toolkit using Python and Bash scripts
to streamline IT operations. The toolkit includes automated backup systems,
alert mechanisms, and reporting tools.

Key achievements:
• Saved 15+ hours per week in manual tasks
• Reduced human errors in routine operations
• Implemented proactive monitoring and alerting
• Created automated reporting for management`,
			Technologies: []string{"Python", "Bash", "Cron", "Systemd", "Monitoring Tools"},
			Tags:         []string{"Python", "Automation", "Bash", "Operations"},
			Image:        "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=800&h=400&fit=crop",
			Date:         "2023-08-20",
			Featured:     false,
		},
		{
			ID:       "internal-apis",
			Title:    "API for Internal Services",
			Category: "development",
			Meta:     "Backend Development • Node.js & Spring Boot",
			Description: "Internal REST APIs with authentication, rate limiting, and observability hooks. " +
				"Enabled integration between 5 previously siloed systems.",
			LongDescription: `Designed and implemented REST APIs to connect previously siloed internal systems.
The APIs include robust authentication, rate limiting, comprehensive logging,
and monitoring capabilities.

Key achievements:
• Connected 5 disparate systems
• Improved data consistency across platforms
• Reduced manual data synchronization by 95%
• Implemented comprehensive API monitoring and logging`,
			Technologies: []string{"Node.js", "Express.js", "Spring Boot", "JWT", "Redis", "PostgreSQL"},
			Tags:         []string{"Node.js", "Spring Boot", "REST API", "Integration"},
			Image:        "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&h=400&fit=crop",
			Date:         "2023-06-15",
			Featured:     false,
		},
	}
}
