package seed

// currentVersionName is the question set every fresh install starts with.
const currentVersionName = "MIPQ III + RIASEC v1.0"

type domainSeed struct {
	Name        string
	Family      string
	MaxScale    int
	Description string
}

// MI domains answer on a 1-5 Likert scale, RIASEC on 1-3
// (Dislike / Not Sure / Like).
var domainSeeds = []domainSeed{
	{"Linguistic", "MI", 5, "Ability to use words effectively, both orally and in writing."},
	{"Logical-Mathematical", "MI", 5, "Capacity to use numbers effectively and reason well."},
	{"Spatial", "MI", 5, "Ability to perceive the visual-spatial world accurately."},
	{"Bodily-Kinesthetic", "MI", 5, "Expertise in using the whole body to express ideas and feelings."},
	{"Musical", "MI", 5, "Capacity to perceive, discriminate, transform, and express musical forms."},
	{"Interpersonal", "MI", 5, "Ability to perceive and make distinctions in the moods and intentions of others."},
	{"Intrapersonal", "MI", 5, "Self-knowledge and ability to act adaptively on the basis of that knowledge."},
	{"Existential", "MI", 5, "Sensitivity and capacity to tackle deep questions about human existence."},
	{"Naturalistic", "MI", 5, "Expertise in recognizing and classifying flora and fauna."},
	{"Realistic", "RIASEC", 3, "Prefers physical activities that require skill, strength, and coordination."},
	{"Investigative", "RIASEC", 3, "Prefers activities involving thinking, organizing, and understanding."},
	{"Artistic", "RIASEC", 3, "Prefers ambiguous, free, unsystematized activities for creative expression."},
	{"Social", "RIASEC", 3, "Prefers activities that involve helping and developing others."},
	{"Enterprising", "RIASEC", 3, "Prefers activities that involve influencing others to attain goals."},
	{"Conventional", "RIASEC", 3, "Prefers activities that involve systematic manipulation of data, records, or materials."},
}

type namedSeed struct {
	Name        string
	Description string
}

var strandSeeds = []namedSeed{
	{"STEM", "Science, Technology, Engineering, and Mathematics"},
	{"ABM", "Accountancy, Business, and Management"},
	{"HUMSS", "Humanities and Social Sciences"},
	{"GAS", "General Academic Strand"},
	{"TVL", "Technical-Vocational-Livelihood"},
	{"Sports", "Sports Track"},
	{"Arts and Design", "Arts and Design Track"},
}

var careerSeeds = []namedSeed{
	{"Software Engineer", "Designs, develops, and maintains software systems and applications."},
	{"Data Scientist", "Analyzes complex data to help organizations make better decisions."},
	{"Civil Engineer", "Designs and oversees construction of infrastructure projects."},
	{"Doctor / Physician", "Diagnoses and treats illnesses and injuries in patients."},
	{"Nurse", "Provides patient care, health education, and medical support."},
	{"Accountant", "Manages financial records, audits, and tax compliance."},
	{"Entrepreneur", "Starts and manages businesses, identifying market opportunities."},
	{"Lawyer", "Advises and represents clients in legal matters."},
	{"Teacher", "Educates students and facilitates learning in academic settings."},
	{"Psychologist", "Studies mental processes and behavior, provides counseling."},
	{"Journalist", "Researches, writes, and reports on news and current events."},
	{"Graphic Designer", "Creates visual concepts for communications using design tools."},
	{"Musician / Composer", "Creates, performs, and produces music."},
	{"Architect", "Designs buildings and structures, plans spatial environments."},
	{"Environmental Scientist", "Studies the environment and develops solutions to environmental problems."},
	{"Marketing Manager", "Plans and executes marketing strategies for products or services."},
	{"Social Worker", "Helps individuals and communities cope with challenges."},
	{"Athlete / Sports Coach", "Competes in sports or coaches athletes to improve performance."},
	{"Chef / Culinary Artist", "Prepares food and manages kitchen operations creatively."},
	{"Mechanical Engineer", "Designs and develops mechanical systems and devices."},
	{"Financial Analyst", "Evaluates financial data and provides investment recommendations."},
	{"Diplomat / Foreign Service", "Represents country in international relations and negotiations."},
	{"Biologist", "Studies living organisms and their relationships to the environment."},
	{"Animator / Multimedia Artist", "Creates visual effects, animations, and multimedia content."},
	{"Counselor", "Provides guidance and support for personal and professional development."},
}

type weightSeed struct {
	Target string
	Domain string
	Weight float64
}

var strandWeightSeeds = []weightSeed{
	{"STEM", "Logical-Mathematical", 0.25},
	{"STEM", "Spatial", 0.15},
	{"STEM", "Naturalistic", 0.10},
	{"STEM", "Intrapersonal", 0.05},
	{"STEM", "Realistic", 0.15},
	{"STEM", "Investigative", 0.25},
	{"STEM", "Conventional", 0.05},
	{"ABM", "Logical-Mathematical", 0.20},
	{"ABM", "Linguistic", 0.10},
	{"ABM", "Interpersonal", 0.10},
	{"ABM", "Intrapersonal", 0.05},
	{"ABM", "Enterprising", 0.25},
	{"ABM", "Conventional", 0.20},
	{"ABM", "Social", 0.10},
	{"HUMSS", "Linguistic", 0.25},
	{"HUMSS", "Interpersonal", 0.15},
	{"HUMSS", "Existential", 0.15},
	{"HUMSS", "Intrapersonal", 0.10},
	{"HUMSS", "Social", 0.20},
	{"HUMSS", "Artistic", 0.10},
	{"HUMSS", "Enterprising", 0.05},
	{"GAS", "Linguistic", 0.12},
	{"GAS", "Logical-Mathematical", 0.12},
	{"GAS", "Interpersonal", 0.12},
	{"GAS", "Intrapersonal", 0.10},
	{"GAS", "Existential", 0.08},
	{"GAS", "Investigative", 0.12},
	{"GAS", "Social", 0.12},
	{"GAS", "Enterprising", 0.12},
	{"GAS", "Conventional", 0.10},
	{"TVL", "Bodily-Kinesthetic", 0.20},
	{"TVL", "Spatial", 0.15},
	{"TVL", "Naturalistic", 0.10},
	{"TVL", "Realistic", 0.25},
	{"TVL", "Conventional", 0.15},
	{"TVL", "Investigative", 0.10},
	{"TVL", "Intrapersonal", 0.05},
	{"Sports", "Bodily-Kinesthetic", 0.30},
	{"Sports", "Interpersonal", 0.15},
	{"Sports", "Intrapersonal", 0.10},
	{"Sports", "Naturalistic", 0.10},
	{"Sports", "Realistic", 0.20},
	{"Sports", "Social", 0.10},
	{"Sports", "Enterprising", 0.05},
	{"Arts and Design", "Musical", 0.25},
	{"Arts and Design", "Spatial", 0.20},
	{"Arts and Design", "Bodily-Kinesthetic", 0.10},
	{"Arts and Design", "Existential", 0.10},
	{"Arts and Design", "Artistic", 0.25},
	{"Arts and Design", "Intrapersonal", 0.05},
	{"Arts and Design", "Interpersonal", 0.05},
}

var careerWeightSeeds = []weightSeed{
	{"Software Engineer", "Logical-Mathematical", 0.30},
	{"Software Engineer", "Spatial", 0.15},
	{"Software Engineer", "Intrapersonal", 0.10},
	{"Software Engineer", "Investigative", 0.25},
	{"Software Engineer", "Realistic", 0.15},
	{"Software Engineer", "Conventional", 0.05},
	{"Data Scientist", "Logical-Mathematical", 0.30},
	{"Data Scientist", "Intrapersonal", 0.10},
	{"Data Scientist", "Linguistic", 0.10},
	{"Data Scientist", "Investigative", 0.30},
	{"Data Scientist", "Conventional", 0.10},
	{"Data Scientist", "Realistic", 0.10},
	{"Civil Engineer", "Logical-Mathematical", 0.20},
	{"Civil Engineer", "Spatial", 0.25},
	{"Civil Engineer", "Bodily-Kinesthetic", 0.10},
	{"Civil Engineer", "Realistic", 0.25},
	{"Civil Engineer", "Investigative", 0.15},
	{"Civil Engineer", "Conventional", 0.05},
	{"Doctor / Physician", "Logical-Mathematical", 0.15},
	{"Doctor / Physician", "Naturalistic", 0.15},
	{"Doctor / Physician", "Interpersonal", 0.15},
	{"Doctor / Physician", "Intrapersonal", 0.10},
	{"Doctor / Physician", "Investigative", 0.25},
	{"Doctor / Physician", "Social", 0.20},
	{"Nurse", "Interpersonal", 0.20},
	{"Nurse", "Bodily-Kinesthetic", 0.10},
	{"Nurse", "Naturalistic", 0.10},
	{"Nurse", "Social", 0.30},
	{"Nurse", "Investigative", 0.15},
	{"Nurse", "Realistic", 0.15},
	{"Accountant", "Logical-Mathematical", 0.30},
	{"Accountant", "Intrapersonal", 0.10},
	{"Accountant", "Conventional", 0.35},
	{"Accountant", "Enterprising", 0.10},
	{"Accountant", "Investigative", 0.10},
	{"Accountant", "Linguistic", 0.05},
	{"Entrepreneur", "Interpersonal", 0.15},
	{"Entrepreneur", "Linguistic", 0.10},
	{"Entrepreneur", "Logical-Mathematical", 0.10},
	{"Entrepreneur", "Intrapersonal", 0.10},
	{"Entrepreneur", "Enterprising", 0.35},
	{"Entrepreneur", "Social", 0.10},
	{"Entrepreneur", "Artistic", 0.10},
	{"Lawyer", "Linguistic", 0.30},
	{"Lawyer", "Interpersonal", 0.15},
	{"Lawyer", "Existential", 0.10},
	{"Lawyer", "Intrapersonal", 0.10},
	{"Lawyer", "Enterprising", 0.20},
	{"Lawyer", "Social", 0.15},
	{"Teacher", "Linguistic", 0.20},
	{"Teacher", "Interpersonal", 0.20},
	{"Teacher", "Existential", 0.10},
	{"Teacher", "Social", 0.30},
	{"Teacher", "Artistic", 0.10},
	{"Teacher", "Enterprising", 0.10},
	{"Psychologist", "Intrapersonal", 0.20},
	{"Psychologist", "Interpersonal", 0.20},
	{"Psychologist", "Existential", 0.15},
	{"Psychologist", "Linguistic", 0.10},
	{"Psychologist", "Social", 0.20},
	{"Psychologist", "Investigative", 0.15},
	{"Journalist", "Linguistic", 0.35},
	{"Journalist", "Interpersonal", 0.10},
	{"Journalist", "Existential", 0.10},
	{"Journalist", "Intrapersonal", 0.10},
	{"Journalist", "Artistic", 0.15},
	{"Journalist", "Investigative", 0.10},
	{"Journalist", "Enterprising", 0.10},
	{"Graphic Designer", "Spatial", 0.30},
	{"Graphic Designer", "Musical", 0.10},
	{"Graphic Designer", "Intrapersonal", 0.05},
	{"Graphic Designer", "Artistic", 0.35},
	{"Graphic Designer", "Realistic", 0.10},
	{"Graphic Designer", "Investigative", 0.10},
	{"Musician / Composer", "Musical", 0.40},
	{"Musician / Composer", "Intrapersonal", 0.10},
	{"Musician / Composer", "Existential", 0.10},
	{"Musician / Composer", "Artistic", 0.30},
	{"Musician / Composer", "Social", 0.05},
	{"Musician / Composer", "Enterprising", 0.05},
	{"Architect", "Spatial", 0.30},
	{"Architect", "Logical-Mathematical", 0.15},
	{"Architect", "Musical", 0.10},
	{"Architect", "Artistic", 0.20},
	{"Architect", "Realistic", 0.15},
	{"Architect", "Investigative", 0.10},
	{"Environmental Scientist", "Naturalistic", 0.30},
	{"Environmental Scientist", "Logical-Mathematical", 0.15},
	{"Environmental Scientist", "Existential", 0.10},
	{"Environmental Scientist", "Investigative", 0.25},
	{"Environmental Scientist", "Realistic", 0.15},
	{"Environmental Scientist", "Social", 0.05},
	{"Marketing Manager", "Linguistic", 0.15},
	{"Marketing Manager", "Interpersonal", 0.15},
	{"Marketing Manager", "Spatial", 0.10},
	{"Marketing Manager", "Enterprising", 0.30},
	{"Marketing Manager", "Social", 0.15},
	{"Marketing Manager", "Artistic", 0.15},
	{"Social Worker", "Interpersonal", 0.25},
	{"Social Worker", "Existential", 0.15},
	{"Social Worker", "Intrapersonal", 0.15},
	{"Social Worker", "Social", 0.30},
	{"Social Worker", "Artistic", 0.05},
	{"Social Worker", "Enterprising", 0.10},
	{"Athlete / Sports Coach", "Bodily-Kinesthetic", 0.35},
	{"Athlete / Sports Coach", "Interpersonal", 0.15},
	{"Athlete / Sports Coach", "Intrapersonal", 0.10},
	{"Athlete / Sports Coach", "Realistic", 0.20},
	{"Athlete / Sports Coach", "Social", 0.10},
	{"Athlete / Sports Coach", "Enterprising", 0.10},
	{"Chef / Culinary Artist", "Bodily-Kinesthetic", 0.20},
	{"Chef / Culinary Artist", "Naturalistic", 0.15},
	{"Chef / Culinary Artist", "Spatial", 0.10},
	{"Chef / Culinary Artist", "Artistic", 0.20},
	{"Chef / Culinary Artist", "Realistic", 0.25},
	{"Chef / Culinary Artist", "Enterprising", 0.10},
	{"Mechanical Engineer", "Logical-Mathematical", 0.20},
	{"Mechanical Engineer", "Spatial", 0.20},
	{"Mechanical Engineer", "Bodily-Kinesthetic", 0.10},
	{"Mechanical Engineer", "Realistic", 0.30},
	{"Mechanical Engineer", "Investigative", 0.15},
	{"Mechanical Engineer", "Conventional", 0.05},
	{"Financial Analyst", "Logical-Mathematical", 0.30},
	{"Financial Analyst", "Intrapersonal", 0.10},
	{"Financial Analyst", "Linguistic", 0.05},
	{"Financial Analyst", "Investigative", 0.20},
	{"Financial Analyst", "Conventional", 0.25},
	{"Financial Analyst", "Enterprising", 0.10},
	{"Diplomat / Foreign Service", "Linguistic", 0.20},
	{"Diplomat / Foreign Service", "Interpersonal", 0.20},
	{"Diplomat / Foreign Service", "Existential", 0.15},
	{"Diplomat / Foreign Service", "Enterprising", 0.20},
	{"Diplomat / Foreign Service", "Social", 0.15},
	{"Diplomat / Foreign Service", "Artistic", 0.10},
	{"Biologist", "Naturalistic", 0.30},
	{"Biologist", "Logical-Mathematical", 0.15},
	{"Biologist", "Intrapersonal", 0.05},
	{"Biologist", "Investigative", 0.30},
	{"Biologist", "Realistic", 0.15},
	{"Biologist", "Social", 0.05},
	{"Animator / Multimedia Artist", "Spatial", 0.25},
	{"Animator / Multimedia Artist", "Musical", 0.15},
	{"Animator / Multimedia Artist", "Bodily-Kinesthetic", 0.05},
	{"Animator / Multimedia Artist", "Artistic", 0.30},
	{"Animator / Multimedia Artist", "Realistic", 0.15},
	{"Animator / Multimedia Artist", "Investigative", 0.10},
	{"Counselor", "Interpersonal", 0.25},
	{"Counselor", "Intrapersonal", 0.20},
	{"Counselor", "Existential", 0.15},
	{"Counselor", "Linguistic", 0.10},
	{"Counselor", "Social", 0.20},
	{"Counselor", "Artistic", 0.10},
}

type questionSeed struct {
	Domain string
	Text   string
	Order  int
}

// The MIPQ III inventory, 35 items over the nine MI domains.
var mipqQuestionSeeds = []questionSeed{
	{"Linguistic", "Writing is a natural way for me to express myself.", 1},
	{"Linguistic", "At school, studies in native language or social studies were easier for me than mathematics, physics and chemistry.", 2},
	{"Linguistic", "I have recently written something that I am especially proud of, or for which I have received recognition.", 3},
	{"Linguistic", "Metaphors and vivid verbal expressions help me learn efficiently.", 4},
	{"Logical-Mathematical", "At school I was good at mathematics, physics or chemistry.", 5},
	{"Logical-Mathematical", "I can work with and solve complex problems.", 6},
	{"Logical-Mathematical", "Mental arithmetic is easy for me.", 7},
	{"Logical-Mathematical", "I am good at games and problem solving which require logical thinking.", 8},
	{"Spatial", "At school, geometry and assignments involving spatial perception were easier for me than solving equations.", 9},
	{"Spatial", "It is easy for me to conceptualize complex and multidimensional patterns.", 10},
	{"Spatial", "I can easily imagine how a landscape looks from a bird's eye view.", 11},
	{"Spatial", "When I read, I form illustrative pictures or designs in my mind.", 12},
	{"Bodily-Kinesthetic", "I am handy.", 13},
	{"Bodily-Kinesthetic", "I can easily do something concrete with my hands (e.g. knitting and woodwork).", 14},
	{"Bodily-Kinesthetic", "I am good at showing how to do something in practice.", 15},
	{"Bodily-Kinesthetic", "I was good at handicrafts at school.", 16},
	{"Musical", "After hearing a tune once or twice I am able to sing or whistle it quite accurately.", 17},
	{"Musical", "When listening to music, I am able to discern instruments or recognize melodies.", 18},
	{"Musical", "I can easily keep the rhythm when drumming a melody.", 19},
	{"Musical", "I notice immediately if a melody is out of tune.", 20},
	{"Interpersonal", "Even in strange company, I easily find someone to talk to.", 21},
	{"Interpersonal", "I get along easily with different types of people.", 22},
	{"Interpersonal", "I make contact easily with other people.", 23},
	{"Interpersonal", "In negotiations and group work, I am able to support the group to find a consensus.", 24},
	{"Intrapersonal", "I am able to analyze my own motives and ways of action.", 25},
	{"Intrapersonal", "I often think about my own feelings and sentiments and seek reasons for them.", 26},
	{"Intrapersonal", "I spend time regularly reflecting on the important issues in life.", 27},
	{"Intrapersonal", "I like to read psychological or philosophical literature to increase my self-knowledge.", 28},
	{"Intrapersonal", "In the midst of busy everyday life I find it important to contemplate.", 29},
	{"Existential", "Even ordinary everyday life is full of miraculous things.", 30},
	{"Existential", "I often reflect on the meaning of life.", 31},
	{"Existential", "It is important to me to share a quiet moment with others.", 32},
	{"Naturalistic", "I enjoy the beauty and experiences related to nature.", 33},
	{"Naturalistic", "Protecting nature is important to me.", 34},
	{"Naturalistic", "I pay attention to my consumption habits in order to protect the environment.", 35},
}

// The RIASEC interest inventory, 36 items answered Dislike / Not Sure / Like.
var riasecQuestionSeeds = []questionSeed{
	{"Realistic", "Repair a fan, motor, or cycle.", 36},
	{"Investigative", "Do a science experiment.", 37},
	{"Artistic", "Write a story or poem.", 38},
	{"Social", "Help a classmate with studies.", 39},
	{"Enterprising", "Lead a class project or group.", 40},
	{"Conventional", "Arrange books or files in order.", 41},
	{"Realistic", "Build a working model or craft.", 42},
	{"Investigative", "Solve puzzles and riddles.", 43},
	{"Artistic", "Design posters or do painting.", 44},
	{"Social", "Listen to friends' problems.", 45},
	{"Enterprising", "Convince someone with ideas.", 46},
	{"Conventional", "Make a timetable or budget.", 47},
	{"Realistic", "Use tools to fix things.", 48},
	{"Investigative", "Study how plants grow.", 49},
	{"Artistic", "Act in a school play.", 50},
	{"Social", "Explain a topic to others.", 51},
	{"Enterprising", "Start a small business.", 52},
	{"Conventional", "Keep financial records.", 53},
	{"Realistic", "Work outdoors or with animals.", 54},
	{"Investigative", "Do science lab work.", 55},
	{"Artistic", "Make a short film or edit photos.", 56},
	{"Social", "Volunteer for a social cause.", 57},
	{"Enterprising", "Organize a school event.", 58},
	{"Conventional", "Follow step-by-step instructions.", 59},
	{"Realistic", "Operate machines or equipment.", 60},
	{"Investigative", "Do research from books or the internet.", 61},
	{"Artistic", "Compose music or dance.", 62},
	{"Social", "Support friends during tough times.", 63},
	{"Investigative", "Draw diagrams, charts, or maps.", 64},
	{"Conventional", "Plan a school project or activity.", 65},
	{"Enterprising", "Serve as a class officer or leader.", 66},
	{"Realistic", "Work on computers or coding tasks.", 67},
	{"Artistic", "Create crafts, models, or designs.", 68},
	{"Social", "Help solve conflicts between classmates.", 69},
	{"Enterprising", "Sell an idea or product.", 70},
	{"Conventional", "Maintain schedules or calendars.", 71},
}
